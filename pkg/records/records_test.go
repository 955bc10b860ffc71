package records_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridu-basin/stratcheck/pkg/errors"
	"github.com/eridu-basin/stratcheck/pkg/records"
)

func TestRead(t *testing.T) {
	input := "SampleID,Depth,OrganicContent\n" +
		"S1,0.5,Undetermined\n" +
		"S2,1.0,Plant matter\n" +
		"\n" +
		"S3,1.5,\"Charcoal, fine\"\n"

	got, err := records.Read(strings.NewReader(input), records.DefaultColumns())
	require.NoError(t, err)

	want := []records.Record{
		{Line: 2, ID: "S1", Observed: "Undetermined"},
		{Line: 3, ID: "S2", Observed: "Plant matter"},
		{Line: 5, ID: "S3", Observed: "Charcoal, fine"},
	}
	assert.Equal(t, want, got)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := records.Read(strings.NewReader("SampleID,OrganicContent\n"), records.DefaultColumns())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_ShortRow(t *testing.T) {
	input := "SampleID,OrganicContent,Notes\nS1\nS2,Undetermined,x,extra\n"

	got, err := records.Read(strings.NewReader(input), records.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Observed)
	assert.Equal(t, "Undetermined", got[1].Observed)
}

func TestRead_BareQuotes(t *testing.T) {
	input := "SampleID,OrganicContent,Notes\n" +
		"S1,Undetermined,ash \"layer\" 3\n" +
		"S2,Plant \"matter\",\"sealed\" jar\n"

	got, err := records.Read(strings.NewReader(input), records.DefaultColumns())
	require.NoError(t, err)

	want := []records.Record{
		{Line: 2, ID: "S1", Observed: "Undetermined"},
		{Line: 3, ID: "S2", Observed: `Plant "matter"`},
	}
	assert.Equal(t, want, got)
}

func TestRead_ReadFailure(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("SampleID,OrganicContent\nS1,Undetermined\n"),
		iotest.ErrReader(errors.New("device not ready")),
	)

	got, err := records.Read(r, records.DefaultColumns())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.IsMalformedInput(err), "got %v", err)
	assert.Contains(t, err.Error(), "device not ready")
}

func TestRead_ByteOrderMark(t *testing.T) {
	input := "\ufeffSampleID,OrganicContent\nS1,Undetermined\n"

	got, err := records.Read(strings.NewReader(input), records.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "S1", got[0].ID)
}

func TestRead_CustomColumnsAndDelimiter(t *testing.T) {
	input := "id;organic\nA;Unknown\n"
	columns := records.Columns{ID: "id", Value: "organic"}

	got, err := records.Read(strings.NewReader(input), columns, records.Options{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, []records.Record{{Line: 2, ID: "A", Observed: "Unknown"}}, got)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "missing value column", input: "SampleID,Depth\nS1,0.5\n", want: `"OrganicContent"`},
		{name: "missing id column", input: "Sample,OrganicContent\nS1,x\n", want: `"SampleID"`},
		{name: "empty document", input: "", want: "no header row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := records.Read(strings.NewReader(tt.input), records.DefaultColumns())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.IsMalformedInput(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRead_InvalidColumns(t *testing.T) {
	tests := []records.Columns{
		{ID: "", Value: "OrganicContent"},
		{ID: "SampleID", Value: " "},
		{ID: "SampleID", Value: "SampleID"},
	}

	for _, columns := range tests {
		_, err := records.Read(strings.NewReader("SampleID,OrganicContent\n"), columns)
		assert.True(t, errors.IsValidationError(err), "columns %+v: got %v", columns, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strata.csv")
	require.NoError(t, os.WriteFile(path, []byte("SampleID,OrganicContent\nS1,Undetermined\n"), 0o644))

	got, err := records.Load(path, records.DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, []records.Record{{Line: 2, ID: "S1", Observed: "Undetermined"}}, got)
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := records.Load(path, records.DefaultColumns())
	require.Error(t, err)
	assert.True(t, errors.IsMissingInput(err))
	assert.False(t, errors.IsMalformedInput(err))
}

func TestLoad_MalformedCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.csv")
	require.NoError(t, os.WriteFile(path, []byte("SampleID\nS1\n"), 0o644))

	_, err := records.Load(path, records.DefaultColumns())
	require.Error(t, err)

	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, path, malformed.Path)
	assert.True(t, errors.IsNotFound(err))
}
