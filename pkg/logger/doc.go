// Package logger builds configured log/slog loggers with a small options API.
//
// It supports JSON and text output, static attributes attached to every
// record, and context extractors that inject request-scoped values (such as
// request IDs) into each log record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "contactform"),
//		logger.WithContextExtractors(requestid.Extractor()),
//	)
//	logger.SetAsDefault(log)
package logger
