// Package trim removes configurable lead and rear patterns from text.
//
// A Trimmer holds one pattern per side. The lead pattern is anchored to
// the very start of the input and the rear pattern to the very end, and
// each side removes at most one match per call. Only what a pattern
// actually matches is removed; no repetition is implied beyond what the
// pattern itself says.
//
// # Defaults
//
// An unspecified lead pattern is a run of blank-class characters (see
// the blank package). An unspecified rear pattern repeats the resolved
// lead. An explicitly empty pattern disables that side, which is
// different from leaving it unspecified.
//
// # Call Shapes
//
// Positional patterns go through the package functions:
//
//	trim.Trim("  x  ")                      // "x"      both sides default
//	trim.Trim("--x==", "-")                 // "-x=="   one leading "-"; rear reuses the lead
//	trim.Trim("--x==", "-", "=")            // "-x="    one character per side
//	trim.Trim("  x  ", "", "[[:space:]]+")  // "  x"    lead disabled
//
// Named patterns build a reusable Trimmer:
//
//	t, err := trim.New(trim.WithRear(`=+`))
//	// lead stays the default, rear removes a run of "="
//
// TrimLines applies the same matching to every line independently,
// preserving line breaks. Shrink trims and then collapses every
// internal blank run to one separator.
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/trim"
package trim
