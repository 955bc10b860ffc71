package stratcheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridu-basin/stratcheck"
	"github.com/eridu-basin/stratcheck/pkg/consistency"
	"github.com/eridu-basin/stratcheck/pkg/errors"
	"github.com/eridu-basin/stratcheck/pkg/logging"
)

func writeInputs(t *testing.T, reference, records string) stratcheck.Inputs {
	t.Helper()
	dir := t.TempDir()
	in := stratcheck.Inputs{
		ReferencePath: filepath.Join(dir, "master.json"),
		RecordsPath:   filepath.Join(dir, "strata.csv"),
	}
	require.NoError(t, os.WriteFile(in.ReferencePath, []byte(reference), 0o644))
	require.NoError(t, os.WriteFile(in.RecordsPath, []byte(records), 0o644))
	return in
}

func TestChecker_Run(t *testing.T) {
	in := writeInputs(t,
		`{"S1": "Plant matter", "S2": "Charcoal"}`,
		"SampleID,OrganicContent\nS1,Undetermined\nS2,Charcoal\nS3,Undetermined\n")

	checker, err := stratcheck.New(in)
	require.NoError(t, err)

	result, err := checker.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []consistency.Mismatch{
		{SampleID: "S1", Current: "Undetermined", Expected: "Plant matter", Line: 2},
	}, result.Mismatches)
	assert.Equal(t, 3, result.RecordCount)
	assert.Equal(t, 2, result.ReferenceEntries)
	assert.Equal(t, "Undetermined", result.Sentinel)
	assert.Equal(t, 1, result.Status())
}

func TestChecker_RunIsRepeatable(t *testing.T) {
	in := writeInputs(t, `{"S1": "Plant matter"}`, "SampleID,OrganicContent\nS1,Undetermined\n")
	checker, err := stratcheck.New(in)
	require.NoError(t, err)

	first, err := checker.Run(context.Background())
	require.NoError(t, err)
	second, err := checker.Run(context.Background())
	require.NoError(t, err)

	text1, status1 := consistency.Report(first.Mismatches)
	text2, status2 := consistency.Report(second.Mismatches)
	assert.Equal(t, text1, text2)
	assert.Equal(t, status1, status2)
}

func TestChecker_Options(t *testing.T) {
	in := writeInputs(t, `{"A": "Bone"}`, "id;organic\nA;Unknown\n")

	checker, err := stratcheck.New(in,
		stratcheck.WithColumns("id", "organic"),
		stratcheck.WithSentinel("Unknown"),
		stratcheck.WithDelimiter(';'),
	)
	require.NoError(t, err)

	result, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "Bone", result.Mismatches[0].Expected)
}

func TestNew_InvalidConfiguration(t *testing.T) {
	valid := stratcheck.Inputs{ReferencePath: "m.json", RecordsPath: "r.csv"}

	tests := []struct {
		name   string
		inputs stratcheck.Inputs
		opts   []stratcheck.Option
	}{
		{name: "no reference", inputs: stratcheck.Inputs{RecordsPath: "r.csv"}},
		{name: "no records", inputs: stratcheck.Inputs{ReferencePath: "m.json"}},
		{name: "empty sentinel", inputs: valid, opts: []stratcheck.Option{stratcheck.WithSentinel("")}},
		{name: "same columns", inputs: valid, opts: []stratcheck.Option{stratcheck.WithColumns("x", "x")}},
		{name: "quote delimiter", inputs: valid, opts: []stratcheck.Option{stratcheck.WithDelimiter('"')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := stratcheck.New(tt.inputs, tt.opts...)
			assert.Error(t, err)
			assert.Nil(t, checker)
		})
	}
}

func TestChecker_LoadFailuresAbort(t *testing.T) {
	t.Run("missing reference", func(t *testing.T) {
		in := writeInputs(t, `{}`, "SampleID,OrganicContent\n")
		in.ReferencePath += ".gone"

		checker, err := stratcheck.New(in)
		require.NoError(t, err)
		result, err := checker.Run(context.Background())
		assert.Nil(t, result)
		assert.True(t, errors.IsMissingInput(err))
	})

	t.Run("missing records", func(t *testing.T) {
		in := writeInputs(t, `{}`, "SampleID,OrganicContent\n")
		in.RecordsPath += ".gone"

		checker, err := stratcheck.New(in)
		require.NoError(t, err)
		result, err := checker.Run(context.Background())
		assert.Nil(t, result)
		assert.True(t, errors.IsMissingInput(err))
	})

	t.Run("missing value column", func(t *testing.T) {
		in := writeInputs(t, `{"S1": "Plant matter"}`, "SampleID,Depth\nS1,0.4\n")

		checker, err := stratcheck.New(in)
		require.NoError(t, err)
		result, err := checker.Run(context.Background())
		assert.Nil(t, result)
		assert.True(t, errors.IsMalformedInput(err))
	})

	t.Run("malformed reference", func(t *testing.T) {
		in := writeInputs(t, `{"S1": `, "SampleID,OrganicContent\n")

		checker, err := stratcheck.New(in)
		require.NoError(t, err)
		_, err = checker.Run(context.Background())
		assert.True(t, errors.IsMalformedInput(err))
	})
}

func TestChecker_LogsToConfiguredLogger(t *testing.T) {
	in := writeInputs(t, `{"S1": "Plant matter"}`, "SampleID,OrganicContent\nS1,Undetermined\n")
	tl := logging.NewTestLogger(t)

	checker, err := stratcheck.New(in, stratcheck.WithLogger(tl.Logger))
	require.NoError(t, err)
	_, err = checker.Run(context.Background())
	require.NoError(t, err)

	tl.AssertContains(t, "Reference table loaded")
	tl.AssertContains(t, `"input":"records"`)
	tl.AssertContains(t, `"inconsistencies":1`)
}

func TestChecker_LogsAbortCause(t *testing.T) {
	in := writeInputs(t, `{"S1": "Plant matter"}`, "SampleID,Depth\nS1,12\n")
	tl := logging.NewTestLogger(t)

	checker, err := stratcheck.New(in, stratcheck.WithLogger(tl.Logger))
	require.NoError(t, err)
	result, err := checker.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)

	tl.AssertContains(t, "Check aborted before comparison")
	tl.AssertContains(t, `missing required column \"OrganicContent\"`)
	tl.AssertNotContains(t, "Comparison finished")
}
