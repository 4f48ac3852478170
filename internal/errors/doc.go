// Package errors provides error handling conventions for the medianame CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, exit code constants
// following standard Unix conventions, and thin re-exports of the
// cockroachdb/errors wrapping helpers so callers only need one errors
// import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, mnerrors.ErrNotDirectory) {
//	    // root path is not a directory
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, bad root path, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// Per-entity rename failures are deliberately NOT surfaced as process
// failures; the walk completes and the process exits 0. Only argument
// and startup errors (unreadable root, unopenable log file) carry a
// non-zero exit code.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications. It supports error unwrapping via
// [errors.Unwrap] and [errors.As]:
//
//	err := mnerrors.NewUserError(mnerrors.ErrNotDirectory, "Pass the library root, not a file")
//	var exitErr *mnerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
