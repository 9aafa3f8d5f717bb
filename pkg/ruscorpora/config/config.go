package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
)

// LoadOptions reads normalization options from a YAML (.yaml, .yml) or
// TOML (.toml) file. Keys missing from the file keep their defaults.
//
// Example (YAML):
//
//	remove_accents: true
//	join_split: true
//	join_hyphenated: false
//	punct_tag: PNCT
//	wrap_tags: true
//	flatten: true
func LoadOptions(path string) (normalize.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return normalize.Options{}, err
	}

	opts := normalize.DefaultOptions()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &opts)
	case ".toml":
		err = decodeTOML(data, &opts)
	default:
		return normalize.Options{}, fmt.Errorf("%w: unsupported options file extension %q", internalerr.ErrInvalidConfig, ext)
	}
	if err != nil {
		return normalize.Options{}, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	if err := opts.Validate(); err != nil {
		return normalize.Options{}, err
	}
	return opts, nil
}

func decodeYAML(data []byte, opts *normalize.Options) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, opts *normalize.Options) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(opts)
}
