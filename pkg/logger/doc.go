// Package logger builds *slog.Logger values configured with functional
// options and decorated with context extractors, so request-scoped values such
// as the request ID and environment are added to every record automatically.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, RequestID, Validators, Failures, ...) keep key
// names consistent. Error and Failures return an empty Attr for nil input, so
// they can be passed without a nil check.
package logger
