// Package logger provides a structured logging facility based on Zap.
//
// Reconcile runs log the plan and every applied or rejected field write;
// the serve mode logs per request. Both go through the same configured
// logger so a deployment switches between human-readable console output
// and JSON with one setting.
//
// # Context Awareness
//
// The WithRayID helper extracts the request's ray id from a Fiber context
// and attaches it to the log entry, so all logs belonging to one request
// can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Reconcile finished", zap.Int("written", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
