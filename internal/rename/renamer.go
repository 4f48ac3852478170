package rename

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/medianame/internal/naming"
)

// DefaultIgnoredExtensions lists file extensions that are never renamed:
// disc structure files, metadata sidecars, logs and scripts.
var DefaultIgnoredExtensions = []string{
	".vob", ".info", ".nfo", ".ifo", ".bup", ".log", ".py",
}

// appleDoublePrefix marks resource-fork shadow files written by macOS.
const appleDoublePrefix = "._"

// renameFunc is swapped out in tests to observe or fail renames.
var renameFunc = os.Rename

// Stats counts the outcomes of a run.
type Stats struct {
	Renamed   int
	Skipped   int
	Unchanged int
	Failed    int

	// Failures records the entities whose rename failed, with the error text.
	Failures []Failure
}

// Failure identifies one entity whose rename failed.
type Failure struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Error string `yaml:"error"`
}

// Renamer decides whether and how to rename a single entity. Its
// catalogs are fixed at construction; the zero value is not usable.
type Renamer struct {
	log        *slog.Logger
	dryRun     bool
	ignoreDirs map[string]struct{}
	ignoreExts map[string]struct{}

	stats Stats
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithDryRun makes the Renamer log intended renames without touching
// the filesystem.
func WithDryRun(dry bool) Option {
	return func(r *Renamer) { r.dryRun = dry }
}

// WithIgnoreDirs sets the directory basenames whose contents are skipped.
func WithIgnoreDirs(dirs []string) Option {
	return func(r *Renamer) {
		for _, d := range dirs {
			if d != "" {
				r.ignoreDirs[d] = struct{}{}
			}
		}
	}
}

// WithIgnoreExtensions replaces the ignored-extension catalog.
// Extensions are matched case-insensitively and must include the dot.
func WithIgnoreExtensions(exts []string) Option {
	return func(r *Renamer) {
		r.ignoreExts = make(map[string]struct{}, len(exts))
		for _, e := range exts {
			if e != "" {
				r.ignoreExts[strings.ToLower(e)] = struct{}{}
			}
		}
	}
}

// New creates a Renamer logging to log, with the default ignored
// extensions unless overridden.
func New(log *slog.Logger, opts ...Option) *Renamer {
	r := &Renamer{
		log:        log,
		ignoreDirs: make(map[string]struct{}),
		ignoreExts: make(map[string]struct{}, len(DefaultIgnoredExtensions)),
	}
	for _, e := range DefaultIgnoredExtensions {
		r.ignoreExts[e] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IgnoresDir reports whether the given directory basename is in the
// ignore set. The walker uses it to prune descent.
func (r *Renamer) IgnoresDir(name string) bool {
	_, ok := r.ignoreDirs[name]
	return ok
}

// Stats returns the outcome counters accumulated so far.
func (r *Renamer) Stats() Stats {
	return r.stats
}

// Rename normalizes one entity under parent and applies the result.
// All skip conditions and failures are logged; none are returned as
// errors, a failed rename is per-entity and non-fatal.
func (r *Renamer) Rename(parent, entity string, isFile bool) {
	if strings.HasPrefix(entity, ".") {
		r.stats.Skipped++
		r.log.Info("skipping hidden file or directory", "name", entity)
		return
	}

	if r.IgnoresDir(filepath.Base(parent)) {
		r.stats.Skipped++
		r.log.Info("skipping ignored directory", "path", parent)
		return
	}

	ext := strings.ToLower(filepath.Ext(entity))
	if _, ok := r.ignoreExts[ext]; ok {
		r.stats.Skipped++
		r.log.Info("skipping file with ignored extension", "name", entity)
		return
	}

	if strings.HasPrefix(entity, appleDoublePrefix) {
		r.stats.Skipped++
		r.log.Info("skipping resource-fork shadow file", "name", entity)
		return
	}

	originalPath := filepath.Join(parent, entity)

	yearFromChild := ""
	if !isFile {
		yearFromChild = firstChildYear(originalPath)
	}

	newName := naming.Format(entity, isFile, yearFromChild)
	newPath := filepath.Join(parent, newName)

	if originalPath == newPath {
		r.stats.Unchanged++
		r.log.Info("no renaming necessary", "path", originalPath)
		return
	}

	if r.dryRun {
		r.stats.Renamed++
		r.log.Info("dry run: would rename", "from", originalPath, "to", newPath)
		return
	}

	if err := renameFunc(originalPath, newPath); err != nil {
		r.stats.Failed++
		r.stats.Failures = append(r.stats.Failures, Failure{
			From:  originalPath,
			To:    newPath,
			Error: err.Error(),
		})
		r.log.Error("rename failed", "from", originalPath, "to", newPath, "error", err)
		return
	}

	r.stats.Renamed++
	r.log.Info("renamed", "from", originalPath, "to", newPath)
}

// firstChildYear scans dir's immediate non-hidden children for the
// first name carrying a four-digit run. Directories whose own name
// lacks a year borrow it from their contents this way.
func firstChildYear(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if year := naming.FindYear(name); year != "" {
			return year
		}
	}
	return ""
}
