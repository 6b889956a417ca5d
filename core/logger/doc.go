// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) and integrates with both the
// one-shot CLI runs and the Fiber server mode.
//
// # Correlation
//
// Two helpers tag loggers with correlation identifiers:
//
//   - WithRunID attaches a freshly generated run identifier, so every log
//     entry of one sync run can be grouped.
//   - WithRayID extracts the request id set by the rayid middleware from a
//     Fiber context, correlating all logs of one HTTP request.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
package logger
