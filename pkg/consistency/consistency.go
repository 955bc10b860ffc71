// Package consistency cross-references sample records against the reference
// table and reports records whose classification is still the "unknown"
// sentinel although the reference table already knows the answer.
package consistency

import (
	"fmt"
	"io"
	"strings"

	"github.com/eridu-basin/stratcheck/pkg/constants"
	"github.com/eridu-basin/stratcheck/pkg/records"
)

// Report lines. The header and item format are part of the tool's output
// contract and must not change.
const (
	NoInconsistenciesLine = "No inconsistencies found."
	HeaderLine            = "Found inconsistencies:"
	itemFormat            = "  Sample %s: CSV says '%s', master list expects '%s'"
)

// Lookup is the read side of a reference table.
type Lookup interface {
	Lookup(id string) (string, bool)
}

// Mismatch is a record marked with the sentinel whose sample the reference
// table has a known classification for.
type Mismatch struct {
	SampleID string `json:"SampleID" yaml:"SampleID"`
	Current  string `json:"current" yaml:"current"`
	Expected string `json:"expected" yaml:"expected"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// FindMismatches checks recs against table using the Undetermined sentinel.
func FindMismatches(table Lookup, recs []records.Record) []Mismatch {
	return FindMismatchesFor(table, recs, constants.UndeterminedSentinel)
}

// FindMismatchesFor checks recs against table. A record yields a Mismatch
// iff its ID is in table and its observed value equals sentinel. Output
// order follows recs. The result is never nil.
func FindMismatchesFor(table Lookup, recs []records.Record, sentinel string) []Mismatch {
	out := make([]Mismatch, 0)
	if table == nil {
		return out
	}
	for _, rec := range recs {
		expected, known := table.Lookup(rec.ID)
		isSentinel := rec.Observed == sentinel
		if known && isSentinel {
			out = append(out, Mismatch{
				SampleID: rec.ID,
				Current:  rec.Observed,
				Expected: expected,
				Line:     rec.Line,
			})
		}
	}
	return out
}

// Status returns the process exit status for a mismatch list.
func Status(mismatches []Mismatch) int {
	if len(mismatches) == 0 {
		return constants.ExitOK
	}
	return constants.ExitInconsistent
}

// Report renders the human-readable report and its exit status.
func Report(mismatches []Mismatch) (string, int) {
	var b strings.Builder
	status, _ := WriteReport(&b, mismatches)
	return b.String(), status
}

// WriteReport writes the human-readable report to w and returns its exit status.
func WriteReport(w io.Writer, mismatches []Mismatch) (int, error) {
	status := Status(mismatches)
	if status == constants.ExitOK {
		_, err := fmt.Fprintln(w, NoInconsistenciesLine)
		return status, err
	}

	if _, err := fmt.Fprintln(w, HeaderLine); err != nil {
		return status, err
	}
	for _, m := range mismatches {
		if _, err := fmt.Fprintf(w, itemFormat+"\n", m.SampleID, m.Current, m.Expected); err != nil {
			return status, err
		}
	}
	return status, nil
}

// Result is the outcome of one check run.
type Result struct {
	Mismatches       []Mismatch `json:"inconsistencies" yaml:"inconsistencies"`
	RecordCount      int        `json:"records" yaml:"records"`
	ReferenceEntries int        `json:"reference_entries" yaml:"reference_entries"`
	Sentinel         string     `json:"sentinel" yaml:"sentinel"`
}

// Status returns the exit status for the result.
func (r *Result) Status() int {
	return Status(r.Mismatches)
}

// Consistent reports whether no mismatches were found.
func (r *Result) Consistent() bool {
	return len(r.Mismatches) == 0
}
