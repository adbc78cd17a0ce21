package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads a comma-separated file with a header row into a Table.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	return NewTable(records[0], records[1:])
}

// WriteSubmission writes (id, is_fraud) pairs to path, one row per test input
// row, in the same order the identifiers were given.
func WriteSubmission(path string, ids []string, preds []int) error {
	if len(ids) != len(preds) {
		return RowCountMismatchError{IDs: len(ids), Preds: len(preds)}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "is_fraud"}); err != nil {
		return err
	}
	for i, id := range ids {
		if err := w.Write([]string{id, strconv.Itoa(preds[i])}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveCSV writes a table back out with its header, mostly for demo datasets.
func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
