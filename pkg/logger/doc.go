// Package logger provides a small slog factory plus the typed attributes the
// notification core logs with (recipient, notification id, kind).
//
// The factory produces JSON output at info level by default; development and
// production presets cover the common cases:
//
//	log := logger.New(logger.WithProduction("notifications"))
//	logger.SetAsDefault(log)
//
// Context extractors let request-scoped values (request id, recipient) flow
// into every record without threading the logger around:
//
//	log := logger.New(
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
package logger
