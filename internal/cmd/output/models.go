package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eridu-basin/stratcheck/pkg/consistency"
)

// Report adapts a check result to every output format. Text output is the
// line report; structured formats serialize the whole result.
type Report struct {
	*consistency.Result
}

// WriteText implements TextWriter.
func (r Report) WriteText(w io.Writer) error {
	_, err := consistency.WriteReport(w, r.Mismatches)
	return err
}

// WriteResult renders result to w in the given format.
func WriteResult(w io.Writer, format Format, result *consistency.Result) error {
	var data any
	switch format {
	case FormatTable:
		data = ResultToTableData(result)
	case FormatJSON, FormatYAML:
		data = result
	default:
		data = Report{Result: result}
	}
	return NewFormatter(format).Format(w, data)
}

// ResultToTableData converts a check result to table format.
func ResultToTableData(result *consistency.Result) Data {
	rows := make([][]string, 0, len(result.Mismatches))
	for _, m := range result.Mismatches {
		line := "-"
		if m.Line > 0 {
			line = strconv.Itoa(m.Line)
		}
		rows = append(rows, []string{line, m.SampleID, m.Current, m.Expected})
	}

	footer := consistency.NoInconsistenciesLine
	if n := len(result.Mismatches); n > 0 {
		footer = fmt.Sprintf("%d inconsistencies in %d records", n, result.RecordCount)
		if n == 1 {
			footer = fmt.Sprintf("1 inconsistency in %d records", result.RecordCount)
		}
	}

	return Data{
		Headers:         []string{"Line", "Sample", "CSV Value", "Expected"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
		Footer:          footer,
	}
}
