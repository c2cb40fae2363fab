// Package log provides the logging abstraction used by blockinfo components.
//
// Library code depends only on the Logger interface. The CLI wires the
// zerolog adapter; tests use the no-op logger:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("pointing to", log.String("base_url", url))
//
//	quiet := log.NewNoopLogger()
package log
