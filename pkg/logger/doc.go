// Package logger builds *slog.Logger instances for sessiond and the session
// packages.
//
// New takes functional options selecting the format, level, static
// attributes and ContextExtractor callbacks. Extractors run on every record,
// which is how request IDs from pkg/requestid end up on log lines emitted
// deep inside the session manager:
//
//	log := logger.New(
//		logger.WithDevelopment("sessiond"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//
// NewFromConfig does the same from a Config (APP_NAME, APP_ENV, LOG_LEVEL,
// LOG_FORMAT).
//
// The attribute helpers in attr.go keep key names consistent. Error and
// Errors return an empty attribute for nil errors. Token logs only a short
// prefix of a session token so log lines cannot be used to replay a session.
package logger
