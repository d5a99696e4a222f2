// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Settings Integration
//
// Configure is the function a settings module selects with
//
//	LOGGING_CONFIG: logger.configure
//	LOGGING:
//	  level: debug
//	  format: console
//	  fields:
//	    service: blog
//
// It decodes LOGGING into a Config, builds the logger and installs it with
// zap.ReplaceGlobals, so everything logged through zap.L() afterwards follows
// the project's settings.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the
// log entry, so all logs related to a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
