package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"primkit/internal/sliceset"
)

// Format is a configuration document syntax.
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatAuto, errors.Wrapf(ErrFormat, "%q", s)
}

// DetectFormat picks the format from the file extension, TOML by default.
func DetectFormat(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil || f == FormatAuto {
		return FormatTOML
	}
	return f
}

// finalKey is the reserved top-level list naming final properties.
const finalKey = "final"

// Load reads the document at path. Every property records path as its Source.
func Load(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	s, err := Decode(f, DetectFormat(path), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	s.setSource(path)
	return s, nil
}

// Decode parses one document. Nested tables flatten to dotted names and
// arrays become multiple values.
func Decode(r io.Reader, format Format, opts ...Option) (*Store, error) {
	doc := make(map[string]any)
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, errors.Wrap(err, "decode json")
			}
		}
	default:
		return nil, errors.Wrapf(ErrFormat, "decode %s", format)
	}

	finals, err := finalNames(doc[finalKey])
	if err != nil {
		return nil, err
	}
	delete(doc, finalKey)

	s := NewStore(opts...)
	if err := flatten("", doc, s.props); err != nil {
		return nil, err
	}
	for _, name := range finals {
		s.MarkFinal(name)
	}
	return s, nil
}

func finalNames(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	if name, ok := v.(string); ok {
		return []string{name}, nil
	}
	names, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.Wrapf(ErrType, "%q must list property names", finalKey)
	}
	return sliceset.Unique(names), nil
}

func flatten(prefix string, v any, out map[string]Property) error {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if err := flatten(join(prefix, k), child, out); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for k, child := range t {
			key, err := cast.ToStringE(k)
			if err != nil {
				return errors.Wrapf(ErrType, "key %v under %q", k, prefix)
			}
			if err := flatten(join(prefix, key), child, out); err != nil {
				return err
			}
		}
		return nil
	}

	if prefix == "" {
		return errors.Wrap(ErrType, "document root must be a table")
	}
	p := Property{Name: prefix, Values: []string{}}
	if v == nil {
		out[prefix] = p
		return nil
	}
	items, isList := v.([]any)
	if !isList {
		items = []any{v}
	}
	for _, item := range items {
		s, err := scalarString(item)
		if err != nil {
			return errors.Wrapf(ErrType, "%q: %v", prefix, err)
		}
		p.Values = append(p.Values, s)
	}
	out[prefix] = p
	return nil
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case map[string]any, map[any]any, []any, []map[string]any:
		return "", errors.Errorf("nested %T is not a scalar", v)
	}
	return cast.ToStringE(v)
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Encode writes the store as one document. Single values are written as
// scalars, everything else as arrays.
func (s *Store) Encode(w io.Writer, format Format) error {
	doc, err := unflatten(s.snapshot())
	if err != nil {
		return err
	}
	switch format {
	case FormatTOML, FormatAuto:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encode toml")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = w.Write(append(data, '\n'))
		return errors.WithStack(err)
	}
	return errors.Wrapf(ErrFormat, "encode %s", format)
}

func unflatten(props []Property) (map[string]any, error) {
	doc := make(map[string]any)
	var finals []string
	for _, p := range props {
		if p.Final {
			finals = append(finals, p.Name)
		}
		if p.Name == finalKey {
			return nil, errors.Wrapf(ErrType, "%q is reserved", finalKey)
		}
		parts := strings.Split(p.Name, ".")
		node := doc
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part]
			if !ok {
				next := make(map[string]any)
				node[part] = next
				node = next
				continue
			}
			next, ok := child.(map[string]any)
			if !ok {
				return nil, errors.Wrapf(ErrType, "%q conflicts with a value at %q", p.Name, part)
			}
			node = next
		}
		leaf := parts[len(parts)-1]
		if _, ok := node[leaf]; ok {
			return nil, errors.Wrapf(ErrType, "%q conflicts with a table", p.Name)
		}
		if len(p.Values) == 1 {
			node[leaf] = p.Values[0]
		} else {
			node[leaf] = append([]string{}, p.Values...)
		}
	}
	if len(finals) > 0 {
		sort.Strings(finals)
		doc[finalKey] = finals
	}
	return doc, nil
}
