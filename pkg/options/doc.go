// Package options implements named option sets whose visibility is
// controlled by include/exclude lists.
//
// Many parts of the Spectra configuration declare a catalog of named
// options (search apps, result columns, overview cards, unit systems,
// normalizers) together with a pair of lists that select which of them
// are active. The selection rules are shared by every consumer:
//
//  1. If no include list is given, every option is included by default.
//  2. The wildcard entry "*" in the include list includes everything.
//  3. The exclude list always has higher precedence than the include
//     list; "*" in the exclude list excludes everything.
//
// Two matching modes exist. Base matches values against the lists with
// exact string comparison. Glob matches them with shell-style glob
// patterns (via gobwas/glob), which is used for metadata paths such as
// "results.*".
//
// Set combines a Base with an insertion-ordered options map and exposes
// the FilteredKeys, FilteredValues and FilteredItems queries. These are
// pure reads computed on every call, so edits to the lists or the map
// take effect uniformly for all consumers.
package options
