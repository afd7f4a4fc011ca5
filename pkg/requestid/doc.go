// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware validates a client supplied X-Request-ID header (letters,
// digits, '-' and '_', at most 128 chars) and otherwise generates a UUIDv7.
// The ID is stored in the request context and echoed in the response.
//
// LogExtractor plugs the ID into pkg/logger so every record logged with the
// request context carries a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
