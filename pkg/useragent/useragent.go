package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownBot is returned by BotName for automated clients without a known name.
const UnknownBot = "Unknown Bot"

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)\b`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)\b`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)\b`),
}

// IsBot reports whether ua belongs to a crawler, link preview fetcher,
// monitoring probe or command line HTTP client. An empty user agent is not
// considered a bot.
func IsBot(ua string) bool {
	lowerUA := strings.ToLower(strings.TrimSpace(ua))
	if lowerUA == "" || humanKeywords.contains(lowerUA) {
		return false
	}
	return botKeywords.contains(lowerUA)
}

// BotName returns a display name for an automated client, or "" when ua
// does not look automated.
func BotName(ua string) string {
	if !IsBot(ua) {
		return ""
	}

	lowerUA := strings.ToLower(ua)
	for _, b := range knownBots {
		if strings.Contains(lowerUA, b.keyword) {
			return b.name
		}
	}

	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(ua); len(m) > 1 {
			// A Caser is not safe for concurrent use.
			return cases.Title(language.English).String(strings.ToLower(m[1]))
		}
	}

	return UnknownBot
}
