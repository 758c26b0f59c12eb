package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"eventd/internal/common/fsutil"
)

// DefaultPath is used when Load is called with an empty path.
const DefaultPath = "config.xml"

// Format selects the decoder for an event document.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the file extension.
// XML is the canonical format and the fallback for unknown extensions.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatXML
	}
}

// document is the format-neutral shape shared by the YAML, JSON and TOML
// decoders. Boolean nodes are kept untyped so the literal rule in ParseBool
// applies to every format alike.
type document struct {
	Events        map[string]eventDoc `json:"events" yaml:"events" toml:"events"`
	DeveloperMode any                 `json:"developer_mode" yaml:"developer_mode" toml:"developer_mode"`
}

type eventDoc struct {
	Observers []observerDoc `json:"observers" yaml:"observers" toml:"observers"`
}

type observerDoc struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Class     string `json:"class" yaml:"class" toml:"class"`
	Method    string `json:"method" yaml:"method" toml:"method"`
	Singleton any    `json:"singleton" yaml:"singleton" toml:"singleton"`
}

// Load reads the event document at path and returns its table.
// A missing file yields a ConfigError with ReasonNotFound; anything that
// cannot be read or decoded yields ReasonInvalidFormat.
func Load(path string) (*Table, error) {
	if path == "" {
		path = DefaultPath
	}
	p, err := fsutil.Resolve(path)
	if err != nil {
		return nil, invalidFormat(path, err)
	}
	if fsutil.Exists(p) && !fsutil.IsFile(p) {
		return nil, invalidFormat(path, fmt.Errorf("%s is not a regular file", p))
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path, err)
		}
		return nil, invalidFormat(path, err)
	}
	t, err := Parse(b, FormatFromPath(p))
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
			return nil, ce
		}
		return nil, invalidFormat(path, err)
	}
	t.Source = path
	return t, nil
}

// Parse decodes an event document held in memory.
func Parse(b []byte, format Format) (*Table, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatXML:
		doc, err = decodeXML(b)
	case FormatYAML:
		err = yaml.Unmarshal(b, &doc)
	case FormatJSON:
		err = json.Unmarshal(b, &doc)
	case FormatTOML:
		err = toml.Unmarshal(b, &doc)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, invalidFormat("", err)
	}
	t, err := build(doc)
	if err != nil {
		return nil, invalidFormat("", err)
	}
	return t, nil
}

func build(doc document) (*Table, error) {
	t := NewTable()
	t.DeveloperMode = ParseBool(nodeText(doc.DeveloperMode))
	for name, ev := range doc.Events {
		if name == "" {
			return nil, fmt.Errorf("event with empty name")
		}
		def := &EventDefinition{Name: name, Observers: make([]Binding, 0, len(ev.Observers))}
		seen := make(map[string]bool, len(ev.Observers))
		for i, o := range ev.Observers {
			key := o.Name
			if key == "" {
				return nil, fmt.Errorf("event %s: observer #%d has no name", name, i+1)
			}
			if seen[key] {
				return nil, fmt.Errorf("event %s: duplicate observer %s", name, key)
			}
			seen[key] = true
			if o.Class == "" || o.Method == "" {
				return nil, fmt.Errorf("event %s: observer %s needs both class and method", name, key)
			}
			def.Observers = append(def.Observers, Binding{
				Key:       key,
				Class:     o.Class,
				Method:    o.Method,
				Singleton: ParseBool(nodeText(o.Singleton)),
			})
		}
		t.Events[name] = def
	}
	return t, nil
}

// nodeText renders a decoded scalar back to the text it was written as.
func nodeText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	default:
		return fmt.Sprint(x)
	}
}
