// Package logging provides a minimal logging facade for the HPKE crypto
// backend.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can substitute
// their own implementation for testing, redaction, or integration with
// existing logging systems.
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
//	// Mark an attribute as redacted
//	logger.Debug(ctx, "key pair generated", logging.Redacted("private_key"))
//	// Logs: private_key="[redacted]"
//
// # Security Considerations
//
//   - Never log private keys, shared secrets, or other sensitive
//     cryptographic material
//   - Use logging.Redacted() to mark sensitive attributes
//   - Ensure log storage is secure and access-controlled
package logging
