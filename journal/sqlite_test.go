package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.sqlite")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	want := sampleRun("R1")
	require.NoError(t, j.RecordRun(want))

	got, err := j.GetRun("R1")
	require.NoError(t, err)

	assert.Equal(t, want.RunID, got.RunID)
	assert.Equal(t, want.TrainRows, got.TrainRows)
	assert.Equal(t, want.Trees, got.Trees)
	assert.InDelta(t, want.F1, got.F1, 1e-9)
	assert.Equal(t, want.TP, got.TP)
	assert.True(t, want.Time.Equal(got.Time))
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	_, err = j.GetRun("nope")
	assert.Error(t, err)
}

func TestSQLiteListRunsBetween(t *testing.T) {
	t.Parallel()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	early := sampleRun("R1")
	early.Time = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := sampleRun("R2")
	late.Time = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, j.RecordRun(early))
	require.NoError(t, j.RecordRun(late))

	runs, err := j.ListRunsBetween(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "R1", runs[0].RunID)
}
