package naming

import (
	"path/filepath"
	"strings"
)

// Format maps a raw file or directory basename to its canonical
// "Title (Year)" form. For files the extension is split off first and
// reattached unchanged in case. fallbackYear is used when the name
// itself carries no four-digit run; pass "" when no fallback is known.
//
// Format is total: any input degrades gracefully to a cleaned,
// year-less name when no year can be determined.
func Format(name string, isFile bool, fallbackYear string) string {
	ext := ""
	if isFile {
		ext = filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}

	name = strings.ReplaceAll(name, "&", "and")

	// Already canonical: hands off. This makes Format idempotent.
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if reCanonical.MatchString(stem) {
		return name + ext
	}

	cleaned := reSeparators.ReplaceAllString(name, " ")
	for _, tag := range releaseTags {
		cleaned = tag.ReplaceAllString(cleaned, "")
	}

	year := reYear.FindString(cleaned)
	if year == "" {
		year = fallbackYear
	}

	if year != "" {
		// Everything from the first four-digit run onward is release
		// noise; only the preceding title text survives.
		if loc := reYear.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[:loc[0]]
		}
		cleaned = strings.TrimSpace(cleaned) + " (" + year + ")"
	} else {
		cleaned = reEmptyParens.ReplaceAllString(cleaned, "")
	}

	cleaned = reTrailingJunk.ReplaceAllString(cleaned, "")
	cleaned = reSpaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if isFile {
		return cleaned + ext
	}
	return cleaned
}

// FindYear returns the first run of four digits in s, or "" if none.
// The Renamer uses it to borrow a year from a directory's children.
func FindYear(s string) string {
	return reYear.FindString(s)
}

// IsCanonical reports whether name (without extension) already matches
// the "Title (Year)" acceptance pattern.
func IsCanonical(name string) bool {
	return reCanonical.MatchString(name)
}
