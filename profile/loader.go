package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// FromFile loads a profile from path, choosing the format by file
// extension: .yaml/.yml, .toml, or .json. Keys absent from the file
// keep their built-in values; explicit empty strings override. The
// profile is validated before being returned.
func FromFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	raw := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Profile{}, fmt.Errorf("parse yaml profile: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Profile{}, fmt.Errorf("parse toml profile: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Profile{}, fmt.Errorf("parse json profile: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("unsupported profile format %q", ext)
	}

	p := Default()
	if err := decodeMap(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// decodeMap decodes a parsed document over the prefilled profile, so
// absent keys keep their defaults regardless of the source format.
func decodeMap(raw map[string]any, p *Profile) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Save writes the profile to path atomically, in the format named by
// the file extension.
func (p Profile) Save(path string) error {
	// Keys mirror the struct's json tags so every format round-trips
	// through FromFile.
	keyed := map[string]any{
		"blank_class": p.BlankClass,
		"separator":   p.Separator,
		"var_pattern": p.VarPattern,
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(keyed)
	case ".toml":
		data, err = toml.Marshal(keyed)
	case ".json":
		data, err = json.MarshalIndent(keyed, "", "  ")
	default:
		return fmt.Errorf("unsupported profile format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Schema returns the JSON Schema for profile documents.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Profile{})
}
