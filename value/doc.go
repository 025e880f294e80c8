// Package value renders arbitrary values as display text.
//
// Every function is total: any input, including nil, produces a string
// and never an error. The package is the rendering layer underneath
// blank, stitch, trim, and subst.
//
// # Rendering Rules
//
//   - nil (including nil pointers) -> ""
//   - string, []byte -> the text itself
//   - error, fmt.Stringer -> Error() / String()
//   - other scalars -> their default Go text form
//   - slices and arrays -> elements joined with a single space
//   - maps -> alternating key/value entries, keys sorted, joined with
//     a single space
//   - pointers -> followed until a concrete value is reached
//
// Sequences and maps are joined flat: nested containers inside them keep
// their raw Go form rather than being rendered recursively.
//
// # Example
//
//	value.Stringify([]any{"a", 1, "b"})
//	// "a 1 b"
//
//	value.Stringify(map[string]int{"b": 2, "a": 1})
//	// "a 1 b 2"
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/value"
package value
