package stitch

import (
	"strings"

	"github.com/rkleemann/strtools/blank"
	"github.com/rkleemann/strtools/value"
)

// DefaultSeparator is the text placed between two non-blank items.
const DefaultSeparator = " "

// Stitcher joins rendered values with a separator, skipping the
// separator next to blank items. A Stitcher is safe for concurrent use.
type Stitcher struct {
	separator  string
	classifier *blank.Classifier
}

// Option configures a Stitcher.
type Option func(*Stitcher)

// WithSeparator sets the separator emitted between non-blank items.
func WithSeparator(separator string) Option {
	return func(s *Stitcher) {
		s.separator = separator
	}
}

// WithClassifier sets the classifier that decides which items are
// blank.
func WithClassifier(c *blank.Classifier) Option {
	return func(s *Stitcher) {
		s.classifier = c
	}
}

// New creates a stitcher. Without options it uses DefaultSeparator and
// the process-wide blank classifier.
func New(opts ...Option) *Stitcher {
	s := &Stitcher{
		separator:  DefaultSeparator,
		classifier: blank.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Separator returns the stitcher's separator.
func (s *Stitcher) Separator() string {
	return s.separator
}

// Join renders each item and joins them with the stitcher's separator,
// emitting the separator only between two non-blank neighbors.
func (s *Stitcher) Join(items ...any) string {
	return s.join(s.separator, items)
}

// JoinWith is Join with the separator overridden for this call only.
func (s *Stitcher) JoinWith(separator string, items ...any) string {
	return s.join(separator, items)
}

// join walks the items with a "previous was blank" flag that starts
// true, so no separator precedes the first item.
func (s *Stitcher) join(separator string, items []any) string {
	var b strings.Builder
	prevBlank := true
	for _, item := range items {
		text := value.Stringify(item)
		curBlank := s.classifier.IsBlank(text)
		if !prevBlank && !curBlank {
			b.WriteString(separator)
		}
		b.WriteString(text)
		prevBlank = curBlank
	}
	return b.String()
}

// Default is the process-wide stitcher. Replace it via a profile
// install before concurrent use.
var Default = New()

// Join joins items with the Default stitcher.
func Join(items ...any) string {
	return Default.Join(items...)
}

// JoinWith joins items with the Default stitcher and a call-scoped
// separator.
func JoinWith(separator string, items ...any) string {
	return Default.JoinWith(separator, items...)
}
