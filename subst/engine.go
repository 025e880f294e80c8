package subst

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rkleemann/strtools/trim"
	"github.com/rkleemann/strtools/value"
)

// DefaultPattern is the variable-name grammar: an identifier optionally
// extended with punctuation-delimited word segments, so "user.name" and
// "item-1" each read as one name.
const DefaultPattern = `[[:alpha:]_]\w*(?:[[:punct:]]\w+)*`

// Engine substitutes variables under one name grammar. An Engine is
// safe for concurrent use.
type Engine struct {
	pattern string
	name    *regexp.Regexp // full-match filter for binding names
	token   *regexp.Regexp // brace or bare tokens under the grammar
}

// settings carries constructor state.
type settings struct {
	pattern string
}

// Option configures an Engine under construction.
type Option func(*settings)

// WithPattern sets the variable-name grammar.
func WithPattern(pattern string) Option {
	return func(s *settings) {
		s.pattern = pattern
	}
}

// New compiles an engine. The grammar is validated eagerly; a pattern
// that does not compile returns an error wrapping ErrPattern.
func New(opts ...Option) (*Engine, error) {
	s := settings{pattern: DefaultPattern}
	for _, opt := range opts {
		opt(&s)
	}

	name, err := regexp.Compile(`\A(?:` + s.pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPattern, s.pattern, err)
	}
	token, err := regexp.Compile(tokenPattern(s.pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPattern, s.pattern, err)
	}
	return &Engine{pattern: s.pattern, name: name, token: token}, nil
}

// Pattern returns the engine's variable-name grammar.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Expand replaces every bound variable token in template and returns
// the result. Tokens whose names are unbound keep their syntax; with no
// bindings the template comes back unchanged. Replacement text is not
// rescanned.
func (e *Engine) Expand(template string, bindings ...Bindings) string {
	resolved := resolve(bindings)
	names := e.participants(resolved)
	if len(names) == 0 {
		return template
	}

	// Quoted names always compile.
	matcher := regexp.MustCompile(tokenPattern(alternation(names)))
	return matcher.ReplaceAllStringFunc(template, func(token string) string {
		return value.Stringify(resolved[tokenWrapper.Trim(token)])
	})
}

// Vars returns the distinct variable names referenced by template, in
// order of first appearance.
func (e *Engine) Vars(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, token := range e.token.FindAllString(template, -1) {
		name := tokenWrapper.Trim(token)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// participants filters binding names to those the grammar accepts and
// orders them longest first, then lexicographically, so a longer name
// always beats a prefix of itself at the same position.
func (e *Engine) participants(resolved map[string]any) []string {
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		if name != "" && e.name.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// alternation joins literal names into one alternation.
func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return strings.Join(quoted, "|")
}

// tokenPattern matches one substitution token under the given name
// pattern: the brace form "${ name }" or the bare form "$name" ending
// at a word boundary.
func tokenPattern(name string) string {
	return `\$(?:\{\s*(?:` + name + `)\s*\}|(?:` + name + `)\b)`
}

// tokenWrapper strips the "$" and "${ }" syntax, whitespace included,
// from a matched token. Grammar names end in a word character, so the
// rear side never bites into the name itself.
var tokenWrapper = mustWrapper()

// mustWrapper builds the token-syntax trimmer, whose patterns are known
// to compile.
func mustWrapper() *trim.Trimmer {
	t, err := trim.New(trim.WithLead(`\$\{?\s*`), trim.WithRear(`\s*\}?`))
	if err != nil {
		panic(err)
	}
	return t
}

// Default is the process-wide engine, built from DefaultPattern.
// Replace it via a profile install before concurrent use.
var Default = mustNew()

// Expand substitutes into template with the Default engine.
func Expand(template string, bindings ...Bindings) string {
	return Default.Expand(template, bindings...)
}

// Vars lists the names template references, using the Default engine.
func Vars(template string) []string {
	return Default.Vars(template)
}

// mustNew builds the default-grammar engine, which is known to compile.
func mustNew() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
}
