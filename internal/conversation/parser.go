// Package conversation turns typed commands into intents and prints user
// notifications.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*CommandParser)(nil)

// CommandParser matches typed commands to intents using keywords and
// simple patterns.
type CommandParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. When the regex has a capture
// group, its first non-empty match becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewCommandParser creates the command parser.
func NewCommandParser(log *logger.Logger) *CommandParser {
	p := &CommandParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(home|favorites|list|profile)$`), domain.IntentNavigate},
		{regexp.MustCompile(`(?i)^(?:favs|fav list)$`), domain.IntentNavigate},
		{regexp.MustCompile(`(?i)^(?:shop|shopping|groceries)$`), domain.IntentNavigate},
		{regexp.MustCompile(`(?i)^(?:go|goto)\s+(\S+)$`), domain.IntentNavigate},
		{regexp.MustCompile(`^(#\S*)$`), domain.IntentNavigate},
		{regexp.MustCompile(`(?i)^(?:open|view|show|recipe)\s+(\d+)$`), domain.IntentOpenRecipe},
		{regexp.MustCompile(`^(\d{1,4})$`), domain.IntentOpenRecipe},
		{regexp.MustCompile(`(?i)^(back|close|esc|x)$`), domain.IntentCloseDetail},
		{regexp.MustCompile(`(?i)^(?:search|find|s)(?:\s+(.+))?$`), domain.IntentSearch},
		{regexp.MustCompile(`^/(.*)$`), domain.IntentSearch},
		{regexp.MustCompile(`(?i)^(?:category|cat|c)\s+(\S+)$`), domain.IntentCategory},
		{regexp.MustCompile(`(?i)^(?:filter|toggle|t)\s+(\S+)$`), domain.IntentToggleFilter},
		{regexp.MustCompile(`(?i)^(quick-time|easy|vegan)$`), domain.IntentToggleFilter},
		{regexp.MustCompile(`(?i)^(more|load more|m|next page)$`), domain.IntentLoadMore},
		{regexp.MustCompile(`(?i)^(?:fav|favorite|favourite|f|heart)(?:\s+(\d+))?$`), domain.IntentToggleFavorite},
		{regexp.MustCompile(`(?i)^(\+|up|inc|increase)$`), domain.IntentServingsUp},
		{regexp.MustCompile(`(?i)^(-|down|dec|decrease)$`), domain.IntentServingsDown},
		{regexp.MustCompile(`(?i)^(?:add|add to list|a)(?:\s+(\d+))?$`), domain.IntentAddToList},
		{regexp.MustCompile(`(?i)^(?:check|tick|uncheck|toggle item)\s+(\d+)$`), domain.IntentCheckItem},
		{regexp.MustCompile(`(?i)^(clear checked|clear|cc|clear done)$`), domain.IntentClearChecked},
		{regexp.MustCompile(`(?i)^(clear all|ca)$`), domain.IntentClearAll},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit},
	}
	return p
}

// tabAliases maps navigation words to tab names.
var tabAliases = map[string]domain.Tab{
	"favs":      domain.TabFavorites,
	"fav list":  domain.TabFavorites,
	"shop":      domain.TabList,
	"shopping":  domain.TabList,
	"groceries": domain.TabList,
}

// Parse converts user input into an intent. Unrecognised input yields
// IntentUnknown with the input as payload.
func (p *CommandParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		return &domain.Intent{Type: rule.intent, Payload: payload(rule.intent, m)}, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func payload(intent domain.IntentType, m []string) string {
	if intent == domain.IntentNavigate {
		word := strings.ToLower(m[0])
		if t, ok := tabAliases[word]; ok {
			return t.String()
		}
	}
	if len(m) < 2 {
		return ""
	}
	arg := strings.TrimSpace(m[1])
	switch intent {
	case domain.IntentNavigate, domain.IntentCategory, domain.IntentToggleFilter:
		return strings.ToLower(arg)
	case domain.IntentLoadMore, domain.IntentCloseDetail, domain.IntentClearChecked,
		domain.IntentClearAll, domain.IntentHelp, domain.IntentQuit,
		domain.IntentServingsUp, domain.IntentServingsDown:
		return ""
	}
	return arg
}
