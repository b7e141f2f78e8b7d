package profile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/induwarauthsara/folio/pkg/errors"
)

// Load reads a profile from path and validates it. The decoder is chosen by
// extension: .toml, .yaml/.yml or .json. An empty path yields [Default].
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read profile %s", path)
	}

	p, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode parses data in the format named by ext (with or without the dot).
func Decode(data []byte, ext string) (*Profile, error) {
	var p Profile
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode TOML")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidProfile, "decode TOML: unknown keys: %s", strings.Join(names, ", "))
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode YAML")
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode JSON")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported profile format: %q (use .toml, .yaml or .json)", ext)
	}
	return &p, nil
}

// Canonical returns the JSON encoding of p used for content hashing.
func (p *Profile) Canonical() []byte {
	data, _ := json.Marshal(p)
	return data
}
