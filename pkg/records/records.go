// Package records reads the stratigraphy sample rows under validation from
// a delimited document with a header row.
package records

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/eridu-basin/stratcheck/pkg/constants"
	"github.com/eridu-basin/stratcheck/pkg/errors"
)

const inputName = "records"

// Columns names the header fields a Record is read from.
type Columns struct {
	ID    string
	Value string
}

// DefaultColumns returns the stratigraphy dataset's column names.
func DefaultColumns() Columns {
	return Columns{
		ID:    constants.DefaultIDColumn,
		Value: constants.DefaultValueColumn,
	}
}

// Validate checks that both column names are set and distinct.
func (c Columns) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.NewValidationError("id_column", c.ID, "cannot be empty")
	}
	if strings.TrimSpace(c.Value) == "" {
		return errors.NewValidationError("value_column", c.Value, "cannot be empty")
	}
	if c.ID == c.Value {
		return errors.NewValidationError("value_column", c.Value, "must differ from id_column")
	}
	return nil
}

// Record is one sample row.
type Record struct {
	// Line is the 1-based line number of the row in the source document
	Line     int    `json:"line" yaml:"line"`
	ID       string `json:"sample_id" yaml:"sample_id"`
	Observed string `json:"observed" yaml:"observed"`
}

// Options tune the reader.
type Options struct {
	// Comma is the field delimiter; zero means ','
	Comma rune
}

// Load reads every record from the document at path.
func Load(path string, columns Columns, opts ...Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewMissingInputError(inputName, path, err)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return read(f, columns, path, opts...)
}

// Read reads every record from r.
func Read(r io.Reader, columns Columns, opts ...Options) ([]Record, error) {
	return read(r, columns, "", opts...)
}

func read(r io.Reader, columns Columns, path string, opts ...Options) ([]Record, error) {
	if err := columns.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	// Short rows are tolerated; missing trailing fields read as "".
	reader.FieldsPerRecord = -1
	// Bare quotes inside unquoted fields are kept as data.
	reader.LazyQuotes = true
	for _, o := range opts {
		if o.Comma != 0 {
			reader.Comma = o.Comma
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewMalformedInputError(inputName, path, "no header row", nil)
	}
	if err != nil {
		return nil, malformed(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// A repeated column name resolves to its last occurrence.
	idIdx, valueIdx := -1, -1
	for i, name := range header {
		switch name {
		case columns.ID:
			idIdx = i
		case columns.Value:
			valueIdx = i
		}
	}
	if idIdx < 0 {
		return nil, missingColumn(path, columns.ID)
	}
	if valueIdx < 0 {
		return nil, missingColumn(path, columns.Value)
	}

	var out []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(path, err)
		}
		line, _ := reader.FieldPos(0)
		out = append(out, Record{
			Line:     line,
			ID:       field(row, idIdx),
			Observed: field(row, valueIdx),
		})
	}
	return out, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func missingColumn(path, name string) error {
	return errors.NewMalformedInputError(inputName, path, "missing required column \""+name+"\"",
		errors.NewNotFoundError("column", name))
}

func malformed(path string, err error) error {
	parseErr := errors.NewParseError("csv", path, err.Error(), err)
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		parseErr.Line = csvErr.Line
		parseErr.Column = csvErr.Column
	}
	return errors.NewMalformedInputError(inputName, path, "invalid csv", parseErr)
}
