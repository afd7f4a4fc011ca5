package useragent

import "strings"

// keywordSet holds lowercase substrings matched against a lowercase user agent
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Search engines, link preview fetchers, monitoring services and HTTP tooling.
var botKeywords = newKeywordSet(
	"bot", "spider", "crawler", "archiver", "slurp", "daum", "sogou", "yeti",
	"facebookexternalhit", "lighthouse", "camo asset", "monitor", "validator",
	"fetcher", "scraper", "headlesschrome", "phantomjs",
	"curl/", "wget/", "python-requests", "python-urllib", "go-http-client",
	"okhttp", "java/", "libwww-perl", "httpclient",
)

// Browsers whose user agent accidentally contains a bot keyword.
var humanKeywords = newKeywordSet(
	"cubot", // phone vendor
)

type botName struct {
	keyword string
	name    string
}

// Checked in order; more specific keywords first.
var knownBots = []botName{
	{"googlebot", "Googlebot"},
	{"adsbot-google", "AdsBot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "YandexBot"},
	{"baiduspider", "Baiduspider"},
	{"duckduckbot", "DuckDuckBot"},
	{"applebot", "Applebot"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
	{"discordbot", "Discordbot"},
	{"curl/", "curl"},
	{"wget/", "Wget"},
	{"go-http-client", "Go-http-client"},
	{"python-requests", "python-requests"},
}
