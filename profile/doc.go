// Package profile loads, saves, and installs strtools configuration.
//
// A Profile carries the three process-wide configuration points of the
// library: the blank character class, the stitch separator, and the
// variable-name grammar. Profiles round-trip through YAML, TOML, or
// JSON files, chosen by file extension, with snake_case keys shared by
// all three formats:
//
//	blank_class: "[[:space:]]"
//	separator: ", "
//	var_pattern: "[[:alpha:]_]\\w*"
//
// Keys absent from a file keep their built-in values, so a profile file
// only needs the settings it changes.
//
// # Installing
//
// Install validates a profile and replaces the package defaults in
// blank, trim, stitch, and subst in one step:
//
//	p, err := profile.FromFile("strtools.yaml")
//	if err != nil {
//		return err
//	}
//	if err := p.Install(); err != nil {
//		return err
//	}
//
// Install during startup, before concurrent callers exist. Per-profile
// instances built with Classifier, Trimmer, Stitcher, and Engine leave
// the process defaults alone.
//
// # Watching
//
// Watch follows a profile file and delivers each successful reload:
//
//	ch, err := profile.Watch(ctx, "strtools.yaml")
//	for p := range ch {
//		// p is validated and ready to install
//	}
//
// # Location
//
// This package is part of the strtools library:
//
//	import "github.com/rkleemann/strtools/profile"
package profile
