// Package stitch joins values with a blank-aware separator.
//
// Items are rendered to text and joined in order, but the separator is
// only emitted between two non-blank neighbors. Blank items act as
// joints: they suppress the separator on both sides without being
// surrounded by it.
//
//	stitch.Join("a", "b")      // "a b"
//	stitch.Join("a", "", "b")  // "ab"
//	stitch.JoinWith(",", 1, 2) // "1,2"
//
// The separator override in JoinWith is scoped to that call; nothing is
// mutated globally.
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/stitch"
package stitch
