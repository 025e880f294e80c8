package profile

import (
	"github.com/rkleemann/strtools/blank"
	"github.com/rkleemann/strtools/stitch"
	"github.com/rkleemann/strtools/subst"
	"github.com/rkleemann/strtools/trim"
)

// Profile is the serializable set of process-wide configuration
// points: the blank character class, the stitch separator, and the
// variable-name grammar.
type Profile struct {
	BlankClass string `json:"blank_class"`
	Separator  string `json:"separator"`
	VarPattern string `json:"var_pattern"`
}

// Default returns the built-in profile.
func Default() Profile {
	return Profile{
		BlankClass: blank.DefaultClass,
		Separator:  stitch.DefaultSeparator,
		VarPattern: subst.DefaultPattern,
	}
}

// Validate compiles every pattern the profile carries and returns the
// first failure, wrapped in the owning package's sentinel.
func (p Profile) Validate() error {
	if _, err := p.Classifier(); err != nil {
		return err
	}
	if _, err := p.Trimmer(); err != nil {
		return err
	}
	_, err := p.Engine()
	return err
}

// Classifier builds the profile's blank classifier.
func (p Profile) Classifier() (*blank.Classifier, error) {
	return blank.New(p.BlankClass)
}

// Trimmer builds the profile's default trimmer: a run of the profile's
// blank class, trimmed from both sides.
func (p Profile) Trimmer() (*trim.Trimmer, error) {
	return trim.New(trim.WithLead(p.BlankClass + `+`))
}

// Stitcher builds the profile's stitcher.
func (p Profile) Stitcher() (*stitch.Stitcher, error) {
	classifier, err := p.Classifier()
	if err != nil {
		return nil, err
	}
	return stitch.New(
		stitch.WithSeparator(p.Separator),
		stitch.WithClassifier(classifier),
	), nil
}

// Engine builds the profile's substitution engine.
func (p Profile) Engine() (*subst.Engine, error) {
	return subst.New(subst.WithPattern(p.VarPattern))
}

// Install validates the profile and replaces the process-wide defaults
// in blank, trim, stitch, and subst together. Nothing is replaced when
// any part fails to build. Install during startup, before concurrent
// callers exist.
func (p Profile) Install() error {
	classifier, err := p.Classifier()
	if err != nil {
		return err
	}
	trimmer, err := p.Trimmer()
	if err != nil {
		return err
	}
	engine, err := p.Engine()
	if err != nil {
		return err
	}

	blank.Default = classifier
	trim.Default = trimmer
	stitch.Default = stitch.New(
		stitch.WithSeparator(p.Separator),
		stitch.WithClassifier(classifier),
	)
	subst.Default = engine
	return nil
}
