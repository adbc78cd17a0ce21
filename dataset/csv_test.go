package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "train.csv")
	data := "id,amt,is_fraud\n0,12.50,0\n1,900.00,1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	tbl, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "amt", "is_fraud"}, tbl.Columns)
	assert.Equal(t, 2, tbl.NumRows())

	amt, err := tbl.Floats("amt")
	assert.NoError(t, err)
	assert.Equal(t, []float64{12.5, 900.0}, amt)

	y, err := tbl.Ints("is_fraud")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, y)
}

func TestLoadCSVMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestColumnMissing(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable([]string{"id"}, [][]string{{"0"}})
	require.NoError(t, err)

	_, err = tbl.Column("amt")
	var missing MissingColumnError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, "amt", missing.Column)
}

func TestWriteSubmissionRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "submission.csv")
	ids := []string{"10", "11", "12"}
	preds := []int{0, 1, 0}

	require.NoError(t, WriteSubmission(path, ids, preds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "is_fraud"}, records[0])
	assert.Len(t, records, len(ids)+1)
	for i, id := range ids {
		assert.Equal(t, id, records[i+1][0])
	}
	assert.Equal(t, "1", records[2][1])
}

func TestWriteSubmissionRowCountMismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "submission.csv")
	err := WriteSubmission(path, []string{"1", "2"}, []int{0})

	var mismatch RowCountMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.IDs)
	assert.Equal(t, 1, mismatch.Preds)

	// No partial output.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateSynthetic(t *testing.T) {
	t.Parallel()

	tbl := GenerateSynthetic(200, 0.25, 7)
	assert.Equal(t, RawColumns, tbl.Columns)
	assert.Equal(t, 200, tbl.NumRows())

	y, err := tbl.Ints("is_fraud")
	require.NoError(t, err)
	frauds := 0
	for _, v := range y {
		frauds += v
	}
	assert.Greater(t, frauds, 0)
	assert.Less(t, frauds, 200)

	// Seeded: same seed, same table.
	again := GenerateSynthetic(200, 0.25, 7)
	assert.Equal(t, tbl.Rows, again.Rows)
}

func TestDropLabel(t *testing.T) {
	t.Parallel()

	tbl := GenerateSynthetic(10, 0.3, 1)
	test := tbl.DropLabel()

	assert.False(t, test.HasColumn("is_fraud"))
	assert.Equal(t, len(tbl.Columns)-1, len(test.Columns))
	assert.Equal(t, tbl.NumRows(), test.NumRows())
}
