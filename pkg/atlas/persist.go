package atlas

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cartomesh/atlasmap/pkg/constants"
	"github.com/cartomesh/atlasmap/pkg/errors"
)

// Format identifies a persisted atlas encoding.
type Format string

// Supported persistence formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, defaulting to JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewValidationError("format", s, "must be json or yaml")
	}
}

// MarshalJSON writes regions with keys in canonical order so the persisted
// artifact is byte-for-byte reproducible.
func (r Regions) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	SortKeys(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes regions as an ordered mapping under the same canonical
// key order used for JSON.
func (r Regions) MarshalYAML() (any, error) {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	SortKeys(keys)

	out := make(yaml.MapSlice, 0, len(keys))
	for _, key := range keys {
		out = append(out, yaml.MapItem{Key: key, Value: r[key]})
	}
	return out, nil
}

// Encode serializes the atlas in the given format.
func (a *Atlas) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(a)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return append(data, '\n'), nil
	}
}

// saveOptions holds configuration for Save.
type saveOptions struct {
	format Format
}

// SaveOption configures a Save call.
type SaveOption func(*saveOptions)

// WithFormat sets the persistence format (default JSON).
func WithFormat(format Format) SaveOption {
	return func(o *saveOptions) {
		o.format = format
	}
}

// Save writes the atlas to path. The write is atomic: data goes to a
// temporary file in the target directory first and is renamed into place,
// so a failed write never leaves a partial artifact behind.
func (a *Atlas) Save(path string, opts ...SaveOption) error {
	options := &saveOptions{format: FormatForPath(path)}
	for _, opt := range opts {
		opt(options)
	}

	data, err := a.Encode(options.format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Load reads an atlas from path, detecting the format from the extension.
// Round-tripping through Save and Load is lossless for all atlas fields.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(data, FormatForPath(path))
}

// Decode parses a serialized atlas.
func Decode(data []byte, format Format) (*Atlas, error) {
	a := New()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, a); err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
	default:
		if err := json.Unmarshal(data, a); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
	}
	if a.Regions == nil {
		a.Regions = make(Regions)
	}
	return a, nil
}

// FormatForPath infers the persistence format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
