// Package naming turns raw media file and directory names into the
// canonical "Title (Year)" form.
//
// [Format] is a total function over any input string: it strips release
// tags (resolution, source, codec, audio and group markers), collapses
// separator runs, detects a four-digit year, and reattaches the file
// extension unchanged. Names already in canonical form pass through
// untouched, so applying Format twice is the same as applying it once.
//
// The release-tag catalog and the canonical acceptance pattern live in
// catalog.go as package-level compiled regexps; removal is in-order and
// case-insensitive.
package naming
