package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeTOML parses options from TOML. Keys that are absent stay unset.
func DecodeTOML(data []byte) (Options, error) {
	var o Options
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&o)
	if err != nil {
		return Options{}, fmt.Errorf("options: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("options: unknown toml keys %v", undecoded)
	}
	return o, nil
}

// DecodeYAML parses options from YAML. Keys that are absent stay unset.
func DecodeYAML(data []byte) (Options, error) {
	var o Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("options: decode yaml: %w", err)
	}
	return o, nil
}

// DecodeJSON parses options from JSON. Keys that are absent or null stay unset.
func DecodeJSON(data []byte) (Options, error) {
	var o Options
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("options: decode json: %w", err)
	}
	return o, nil
}

// LoadFile reads options from a file, choosing the codec by extension:
// .toml, .yaml/.yml or .json.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("options: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".json":
		return DecodeJSON(data)
	default:
		return Options{}, fmt.Errorf("options: unsupported file type %q", filepath.Ext(path))
	}
}
