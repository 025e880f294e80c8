// Package subst performs flat named-variable substitution in text.
//
// A template references variables in two surface forms:
//
//	$name          bare form, ends at a word boundary
//	${ name }      brace form, whitespace inside the braces is tolerated
//
// Expand replaces every token whose name is bound; tokens whose names
// are unbound keep their syntax untouched. Substitution is a single
// left-to-right pass: replacement text is never rescanned, and there
// are no conditionals, loops, or filters.
//
// # Names
//
// A name is an identifier optionally extended by punctuation-delimited
// word segments, so "user.name", "item-1", and "_" are each one name.
// Binding names that do not fit the grammar are ignored. When one bound
// name is a prefix of another ("day" and "days"), the longer name wins
// at any position where both could match.
//
// # Bindings
//
// Bindings come in three shapes, merged left to right when several are
// given:
//
//	subst.Expand("Hi $name", subst.Map(map[string]any{"name": "Bob"}))
//	subst.Expand("Hi $name", subst.Pairs("name", "Bob"))
//	subst.Expand("Hi $_", subst.Single("Bob"))
//
// Single binds its value to the name "_". With no bindings at all the
// template is returned unchanged.
//
// # Listing Variables
//
// Vars reports the distinct names a template references, in first
// appearance order:
//
//	subst.Vars("$greeting, $name! Lovely $time_of_day.")
//	// ["greeting", "name", "time_of_day"]
//
// # Custom Grammars
//
// An engine with its own name grammar restricts or widens what counts
// as a variable:
//
//	e, err := subst.New(subst.WithPattern(`[[:upper:]][[:alnum:]]*`))
//	// only names like "Host" or "Port1" are recognized
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/subst"
package subst
