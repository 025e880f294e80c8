package trim

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rkleemann/strtools/blank"
	"github.com/rkleemann/strtools/stitch"
	"github.com/rkleemann/strtools/value"
)

// ErrPattern is returned when a trim pattern fails to compile or the
// positional pattern list is malformed.
var ErrPattern = errors.New("invalid trim pattern")

// Trimmer removes one lead and one rear match per call. A Trimmer is
// safe for concurrent use.
type Trimmer struct {
	lead *regexp.Regexp // nil when the lead side is disabled
	rear *regexp.Regexp // nil when the rear side is disabled
}

// settings carries constructor state. Pointers distinguish an
// unspecified pattern, which defaults, from an explicitly empty one,
// which disables the side.
type settings struct {
	lead *string
	rear *string
}

// Option configures a Trimmer under construction.
type Option func(*settings)

// WithLead sets the lead pattern. An empty pattern disables lead
// trimming.
func WithLead(pattern string) Option {
	return func(s *settings) {
		s.lead = &pattern
	}
}

// WithRear sets the rear pattern. An empty pattern disables rear
// trimming.
func WithRear(pattern string) Option {
	return func(s *settings) {
		s.rear = &pattern
	}
}

// New compiles a trimmer. An unspecified lead defaults to a run of
// blank-class characters; an unspecified rear defaults to the resolved
// lead. Patterns are validated eagerly; a pattern that does not compile
// returns an error wrapping ErrPattern.
func New(opts ...Option) (*Trimmer, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	lead := blank.Default.Class() + `+`
	if s.lead != nil {
		lead = *s.lead
	}
	rear := lead
	if s.rear != nil {
		rear = *s.rear
	}

	t := &Trimmer{}
	if lead != "" {
		re, err := regexp.Compile(`\A(?:` + lead + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrPattern, lead, err)
		}
		t.lead = re
	}
	if rear != "" {
		re, err := regexp.Compile(`(?:` + rear + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrPattern, rear, err)
		}
		t.rear = re
	}
	return t, nil
}

// Trim renders v and removes at most one lead match from the start and
// at most one rear match from the end.
func (t *Trimmer) Trim(v any) string {
	return t.trim(value.Stringify(v))
}

// TrimLines renders v and trims every line independently. Lines are
// delimited by "\n"; matches never cross a line boundary and the line
// breaks are preserved.
func (t *Trimmer) TrimLines(v any) string {
	lines := strings.Split(value.Stringify(v), "\n")
	for i, line := range lines {
		lines[i] = t.trim(line)
	}
	return strings.Join(lines, "\n")
}

// trim applies both sides to an already-rendered string. The anchors
// compiled into the patterns limit each side to a single match.
func (t *Trimmer) trim(s string) string {
	if t.lead != nil {
		s = t.lead.ReplaceAllString(s, "")
	}
	if t.rear != nil {
		s = t.rear.ReplaceAllString(s, "")
	}
	return s
}

// Default trims blank-class runs from both sides. Replace it via a
// profile install before concurrent use.
var Default = mustNew()

// Trim renders v and trims it with positional patterns. No patterns:
// both sides default. One: it is the lead and the rear defaults from
// it. Two: lead then rear. An empty pattern disables its side.
func Trim(v any, patterns ...string) (string, error) {
	t, err := forPatterns(patterns)
	if err != nil {
		return "", err
	}
	return t.Trim(v), nil
}

// TrimLines is Trim applied to every line independently.
func TrimLines(v any, patterns ...string) (string, error) {
	t, err := forPatterns(patterns)
	if err != nil {
		return "", err
	}
	return t.TrimLines(v), nil
}

// Shrink renders v, trims it with the default trimmer, and collapses
// every internal run of blank-class characters to one separator.
// Shrink never fails.
func Shrink(v any) string {
	run := regexp.MustCompile(`(?:` + blank.Default.Class() + `)+`)
	return run.ReplaceAllLiteralString(Default.Trim(v), stitch.Default.Separator())
}

// forPatterns maps positional patterns onto a trimmer.
func forPatterns(patterns []string) (*Trimmer, error) {
	switch len(patterns) {
	case 0:
		return Default, nil
	case 1:
		return New(WithLead(patterns[0]))
	case 2:
		return New(WithLead(patterns[0]), WithRear(patterns[1]))
	}
	return nil, fmt.Errorf("%w: expected at most two patterns, got %d", ErrPattern, len(patterns))
}

// mustNew builds the all-default trimmer, whose patterns are known to
// compile.
func mustNew() *Trimmer {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}
