package blank

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/rkleemann/strtools/value"
)

// DefaultClass matches the characters treated as blank by default:
// control characters and whitespace.
const DefaultClass = `[[:cntrl:][:space:]]`

// ErrClass is returned when a blank character class fails to compile.
var ErrClass = errors.New("invalid blank class")

// Classifier reports whether rendered values are blank for one
// character class. A Classifier is safe for concurrent use.
type Classifier struct {
	class string
	full  *regexp.Regexp
}

// New compiles a classifier for the given character class. The class is
// validated eagerly; an invalid class returns an error wrapping
// ErrClass.
func New(class string) (*Classifier, error) {
	full, err := regexp.Compile(`\A(?:` + class + `)+\z`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrClass, class, err)
	}
	return &Classifier{class: class, full: full}, nil
}

// Class returns the character class the classifier was built from.
func (c *Classifier) Class() string {
	return c.class
}

// IsBlank reports whether v renders to an empty string or to text made
// up entirely of blank-class characters.
func (c *Classifier) IsBlank(v any) bool {
	s := value.Stringify(v)
	return s == "" || c.full.MatchString(s)
}

// Default is the process-wide classifier, built from DefaultClass.
// Replace it via a profile install before concurrent use.
var Default = mustNew(DefaultClass)

// IsBlank reports whether v is blank under the Default classifier.
func IsBlank(v any) bool {
	return Default.IsBlank(v)
}

// mustNew builds a classifier from a class known to compile.
func mustNew(class string) *Classifier {
	c, err := New(class)
	if err != nil {
		panic(err)
	}
	return c
}
