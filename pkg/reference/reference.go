// Package reference loads the organic material master list: the authoritative
// mapping from sample identifier to its known organic-content classification.
//
// A Table is built once and never mutated afterwards.
package reference

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/eridu-basin/stratcheck/pkg/errors"
)

// Format is the serialization of a reference document.
type Format string

const (
	// FormatJSON is a JSON object of string to string.
	FormatJSON Format = "json"
	// FormatYAML is a YAML mapping of string to string.
	FormatYAML Format = "yaml"
)

const inputName = "reference table"

// Table maps sample identifiers to their expected classification.
type Table struct {
	entries map[string]string
}

// New builds a Table from a copy of entries.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for id, value := range entries {
		t.entries[id] = value
	}
	return t
}

// Lookup returns the expected classification for id and whether id is known.
func (t *Table) Lookup(id string) (string, bool) {
	if t == nil {
		return "", false
	}
	value, ok := t.entries[id]
	return value, ok
}

// Len returns the number of sample identifiers in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IDs returns the sample identifiers in sorted order.
func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the reference document at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewMissingInputError(inputName, path, err)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	table, err := parse(data, FormatFromPath(path), path)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Parse reads a reference document of the given format from r.
func Parse(r io.Reader, format Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}
	return parse(data, format, "")
}

func parse(data []byte, format Format, path string) (*Table, error) {
	var (
		raw any
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, errors.NewMalformedInputError(inputName, path, "unsupported format "+string(format), nil)
	}
	if err != nil {
		return nil, errors.NewMalformedInputError(inputName, path, "invalid "+string(format),
			errors.WrapParse(string(format), path, err))
	}
	root, ok := raw.(map[string]any)
	if !ok {
		// null, an empty YAML document, a list or a scalar
		return nil, errors.NewMalformedInputError(inputName, path, "document root is not a mapping", nil)
	}

	entries := make(map[string]string, len(root))
	for id, value := range root {
		s, ok := value.(string)
		if !ok {
			return nil, errors.NewMalformedInputError(inputName, path,
				"value for sample "+id+" is not a string",
				errors.NewValidationError(id, value, "expected a string classification"))
		}
		entries[id] = s
	}
	return &Table{entries: entries}, nil
}
