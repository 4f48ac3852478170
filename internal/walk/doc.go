// Package walk traverses a media library tree top-down exactly once,
// handing every file and directory to the renamer.
//
// The traversal contract is deliberate and documented rather than an
// accident of iteration order: at each level hidden and ignored
// subdirectories are pruned before descent, hidden files are dropped,
// all remaining files are processed before all remaining directories,
// and descent uses the pre-rename child names. A directory renamed at
// its own level is therefore not re-resolved before descending; the
// stale path is skipped quietly, the same way os.walk behaves after an
// in-flight rename.
package walk
