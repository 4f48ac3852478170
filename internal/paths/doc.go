// Package paths resolves the filesystem locations used by medianame:
// the XDG config home for the optional config file and helpers for
// creating directories with private permissions.
package paths
