// Package blank decides whether a value counts as blank.
//
// A value is blank when its rendered text is empty or consists entirely
// of characters from a configurable character class. The default class
// covers control and whitespace characters, so "", " \t\n", and nil are
// blank while "0" is not.
//
// # Usage
//
//	blank.IsBlank("  \t ") // true
//	blank.IsBlank("0")     // false
//
// A custom class builds a dedicated classifier:
//
//	c, err := blank.New("[[:space:]]")
//	if err != nil {
//		// invalid character class
//	}
//	c.IsBlank("\x00") // false: control characters are not in the class
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/blank"
package blank
