// Package logging provides structured logging utilities for ecinv.
//
// It wraps the standard library slog package with tool-specific defaults:
// JSON output to stderr, module/version context on every record, and
// source location tracking when the level is debug.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ecinv", "v1.0.0")
//	    slog.Info("starting", "region", region)
//	}
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given; it defaults to INFO.
package logging
