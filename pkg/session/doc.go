// Package session implements a server-side session store backed by
// PostgreSQL. It persists an opaque per-visitor payload keyed by a random
// token, binds every record to the fingerprint of the client that wrote it
// and expires records after a configurable lifetime.
//
// # Architecture
//
// A Manager orchestrates four cooperating parts:
//
//   - Store persists Records. PGStore is the production implementation;
//     MemoryStore serves tests and local development.
//   - Validator decides at read time whether a stored record is still
//     trustworthy: same subnet (optional), not expired, same User-Agent.
//   - Collector deletes expired records. There is no background job: every
//     successful read rolls a die and, with a small configured probability,
//     sweeps the table inline.
//   - Messages is a pair of notice/error queues kept in the per-request
//     State and serialized into the record payload.
//
//	request ─► Middleware ─► Manager.Read ─► Store.Get
//	                              │
//	                              ├─► Validator ──reject──► Store.Delete
//	                              └─► Collector ──maybe───► Store.DeleteExpired
//	handler ─► State / Messages
//	response ◄─ Middleware ─► Manager.Write ─► Store.Upsert
//
// A record that fails validation is deleted, not ignored, and the caller
// sees the same "not found" result as for an unknown or expired token.
//
// # Hooks
//
// Policy code can plug into four points, all optional:
//
//   - WriteApprovalFunc vetoes persistence. Crawlers are already skipped
//     when Config.SkipBots is set.
//   - ReadAcceptFunc may reject a record that passed every check. It can
//     never accept a record that failed one.
//   - GCProbabilityFunc scales the collection probability. Return 100 or
//     more to collect on every read.
//   - CleanStatementFunc rewrites PGStore delete statements before they run.
//
// # Usage
//
//	pool, _ := pg.Connect(ctx, pgCfg)
//	cookies, _ := cookie.New([]string{secret})
//
//	manager := session.New(
//	    session.WithStore(session.NewPGStore(pool)),
//	    session.WithCookieManager(cookies),
//	)
//
//	router.Use(manager.Middleware)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    state := session.MustStateFromContext(r.Context())
//	    state.Messages().Notice("Saved")
//	}
//
// Without the middleware the Manager can be driven directly through Read,
// Write, Destroy, SetUser and ClearUser.
//
// # Error Handling
//
// Unknown, expired and rejected tokens are reported as found == false with
// a nil error. Storage failures are returned joined with ErrStorage; the
// package never retries and never falls back to an unsaved session.
package session
