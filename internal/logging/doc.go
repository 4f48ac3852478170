// Package logging provides structured logging for the medianame CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// The CLI wires two sinks together with [NewMultiHandler]: a TTY-optimized
// text handler on stderr whose level follows the -v/-q flags, and a JSON
// handler appending to the run log file at Info level so every skip, no-op,
// dry-run preview and rename lands there with a timestamp and level.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("renamed", "from", oldPath, "to", newPath)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
