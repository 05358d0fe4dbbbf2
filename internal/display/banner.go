package display

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerArt string

// RenderBanner returns the startup banner for a collection of n recipes,
// sized to the terminal.
func RenderBanner(n int) string {
	return banner(bannerArt, Tagline(n), termWidth())
}

// Tagline is the line printed under the banner art.
func Tagline(n int) string {
	noun := "recipes"
	if n == 1 {
		noun = "recipe"
	}
	return fmt.Sprintf("%d %s · type help for commands, / to search", n, noun)
}

// banner centres art and tagline in width columns. Terminals narrower
// than the art get a one-line title instead.
func banner(art, tagline string, width int) string {
	art = strings.TrimRight(art, "\n")
	artW := lipgloss.Width(art)

	var b strings.Builder
	if width < artW {
		b.WriteString(BannerStyle.Render("recipebox"))
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render(tagline))
		b.WriteByte('\n')
		return b.String()
	}

	pad := strings.Repeat(" ", (width-artW)/2)
	for _, l := range strings.Split(art, "\n") {
		b.WriteString(pad + BannerStyle.Render(l) + "\n")
	}
	b.WriteByte('\n')
	if tw := lipgloss.Width(tagline); width > tw {
		b.WriteString(strings.Repeat(" ", (width-tw)/2))
	}
	b.WriteString(secondaryStyle.Render(tagline))
	b.WriteByte('\n')
	return b.String()
}

func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
