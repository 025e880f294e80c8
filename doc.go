// Package strtools provides utilities for manipulating strings.
//
// strtools is a standalone toolkit designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - value: Stringify arbitrary values, flattening sequences and maps
//   - blank: Classify strings that carry no visible content
//   - stitch: Join items while suppressing separators next to blanks
//   - trim: Strip configurable lead and rear patterns, shrink whitespace
//   - subst: Substitute $name and ${name} variables into templates
//   - profile: Load, validate, and hot-reload shared configuration
//
// # Quick Start
//
// Blank detection:
//
//	import "github.com/rkleemann/strtools/blank"
//	blank.IsBlank("  \t\n")  // true
//	blank.IsBlank("0")       // false
//
// Blank-aware joining:
//
//	import "github.com/rkleemann/strtools/stitch"
//	stitch.Join("a", "b", "", "c")  // "a bc"
//
// Trimming and shrinking:
//
//	import "github.com/rkleemann/strtools/trim"
//	trim.Shrink("  a \t b  ")  // "a b"
//
// Variable substitution:
//
//	import "github.com/rkleemann/strtools/subst"
//	subst.Expand("Hello, $name!", subst.Map(map[string]any{"name": "World"}))
//
// # Design Philosophy
//
// strtools follows these principles:
//
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Sensible defaults with full configurability
//   - Total rendering: every value, nil included, has a text form
package strtools
