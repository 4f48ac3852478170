// Package rename applies the filtering rules and performs (or previews)
// the actual renames.
//
// A [Renamer] decides per entity whether to act: hidden names, entities
// inside ignored directories, files with ignored extensions and
// AppleDouble shadow files are skipped with an info log and no side
// effect. For directories it borrows a year from the first non-hidden
// child whose name carries one. Rename failures are logged at error
// level and never abort the run; the Renamer's [Stats] record what
// happened for the optional run report.
package rename
