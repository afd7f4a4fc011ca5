// Package useragent recognises automated clients by their User-Agent header.
//
// The session manager uses IsBot to avoid persisting sessions for search
// engine crawlers, link preview fetchers and command line tools, which never
// send the session cookie back and would otherwise fill the store with
// single-use records.
//
//	if useragent.IsBot(r.UserAgent()) {
//	    log.Debug("bot request", "bot", useragent.BotName(r.UserAgent()))
//	}
//
// Detection is keyword based and errs on the side of treating a client as
// human.
package useragent
