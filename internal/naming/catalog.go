package naming

import "regexp"

// reCanonical is the acceptance pattern for names that are already in
// "Title (Year)" form. Names matching it are returned unchanged.
var reCanonical = regexp.MustCompile(`^[\p{L}\p{N}_\s]+ \(\d{4}\)$`)

// reSeparators collapses runs of dot, underscore and hyphen into a space.
var reSeparators = regexp.MustCompile(`[._-]+`)

// reYear finds the first run of four digits. It deliberately has no
// boundary anchors: a longer digit run yields its first four digits,
// and a four-digit number inside a title is indistinguishable from a
// release year. That ambiguity is accepted, not validated away.
var reYear = regexp.MustCompile(`\d{4}`)

// reEmptyParens removes parenthesis pairs left hollow by tag removal.
var reEmptyParens = regexp.MustCompile(`\(\s*\)`)

// reTrailingJunk strips hyphens and whitespace left dangling at the end.
var reTrailingJunk = regexp.MustCompile(`[-\s]+$`)

// reSpaceRuns collapses internal whitespace runs to a single space.
var reSpaceRuns = regexp.MustCompile(`\s+`)

// releaseTags is the fixed catalog of release-tag patterns removed from
// names, case-insensitively and in order: resolution and source markers
// as they appear in bracketed release names, codec and audio markers,
// the YTS group tag, HDR and season/episode markers, and bare hyphens.
// Dot-delimited entries are kept in their original dotted form even
// though separator collapse runs first; they fire only on the rare name
// whose dots survive into the cleaned string.
var releaseTags = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[1080p\]`),
	regexp.MustCompile(`(?i)\[480p\]`),
	regexp.MustCompile(`(?i)\[WEBRip\]`),
	regexp.MustCompile(`(?i)\[BluRay\]`),
	regexp.MustCompile(`(?i)\[5\.1\]`),
	regexp.MustCompile(`(?i)\[YTS\.MX\]`),
	regexp.MustCompile(`(?i)\[2160p\]`),
	regexp.MustCompile(`(?i)\[4K\]`),
	regexp.MustCompile(`(?i)\[WEB\]`),
	regexp.MustCompile(`(?i)x264`),
	regexp.MustCompile(`(?i)x265`),
	regexp.MustCompile(`(?i)H264`),
	regexp.MustCompile(`(?i)H265`),
	regexp.MustCompile(`(?i)\.HDR\.`),
	regexp.MustCompile(`(?i)\.S\d+E\d+\.`),
	regexp.MustCompile(`(?i)\.AC3\.`),
	regexp.MustCompile(`(?i)\.EAC3\.`),
	regexp.MustCompile(`(?i)\.AAC\.`),
	regexp.MustCompile(`(?i)\.MP3\.`),
	regexp.MustCompile(`(?i)\.AVC\.`),
	regexp.MustCompile(`(?i)HEVC`),
	regexp.MustCompile(`-`),
}
