package subst

import "github.com/rkleemann/strtools/value"

// DefaultName is the name Single binds its value to.
const DefaultName = "_"

// Bindings is one set of variable bindings in a declared shape.
// Construct it with Map, Pairs, or Single; the zero value binds
// nothing.
type Bindings struct {
	kind   kind
	byName map[string]any
	pairs  []any
	single any
}

type kind int

const (
	kindMap kind = iota
	kindPairs
	kindSingle
)

// Map binds the entries of m directly.
func Map(m map[string]any) Bindings {
	return Bindings{kind: kindMap, byName: m}
}

// Pairs binds alternating name/value elements. Names are rendered to
// text; a trailing name without a value binds the empty value.
func Pairs(kv ...any) Bindings {
	return Bindings{kind: kindPairs, pairs: kv}
}

// Single binds one value to DefaultName, standing in for the omitted
// subject of a call.
func Single(v any) Bindings {
	return Bindings{kind: kindSingle, single: v}
}

// resolve merges binding sets in order, later entries winning.
func resolve(bindings []Bindings) map[string]any {
	resolved := make(map[string]any)
	for _, b := range bindings {
		b.addTo(resolved)
	}
	return resolved
}

// addTo writes one binding set into resolved.
func (b Bindings) addTo(resolved map[string]any) {
	switch b.kind {
	case kindMap:
		for name, v := range b.byName {
			resolved[name] = v
		}
	case kindPairs:
		for i := 0; i < len(b.pairs); i += 2 {
			name := value.Stringify(b.pairs[i])
			if i+1 < len(b.pairs) {
				resolved[name] = b.pairs[i+1]
			} else {
				resolved[name] = nil
			}
		}
	case kindSingle:
		resolved[DefaultName] = b.single
	}
}
