package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug %d", 1)
			if got := strings.Contains(buf.String(), "[DBG] debug 1"); got != tt.wantDebug {
				t.Fatalf("debug output = %v, want %v (%q)", got, tt.wantDebug, buf.String())
			}

			buf.Reset()
			log.Info("info %s", "line")
			if got := strings.Contains(buf.String(), "[INF] info line"); got != tt.wantInfo {
				t.Fatalf("info output = %v, want %v (%q)", got, tt.wantInfo, buf.String())
			}
		})
	}
}

func TestSetLevelSharedWithNamed(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	child := log.Named("shopping")

	child.Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output while off, got %q", buf.String())
	}

	log.SetLevel(LevelVerbose)
	if log.GetLevel() != LevelVerbose {
		t.Fatalf("expected verbose, got %s", log.GetLevel())
	}
	child.Warn("merged %s", "eggs")
	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shopping") || !strings.Contains(out, "merged eggs") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"quiet", LevelOff, false},
		{"", LevelNormal, false},
		{"Normal", LevelNormal, false},
		{"debug", LevelVerbose, false},
		{"verbose", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
