package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const runColumns = `run_id, time, train_path, test_path, train_rows, balanced_rows, test_rows,
	trees, learning_rate, max_depth, threshold, accuracy, precision, recall, f1, tn, fp, fn, tp`

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs
		WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRunsBetween returns runs whose time is within [start, end), oldest first.
func (j *SQLite) ListRunsBetween(start, end time.Time) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var rec RunRecord
	err := s.Scan(
		&rec.RunID,
		&rec.Time,
		&rec.TrainPath,
		&rec.TestPath,
		&rec.TrainRows,
		&rec.BalancedRows,
		&rec.TestRows,
		&rec.Trees,
		&rec.LearningRate,
		&rec.MaxDepth,
		&rec.Threshold,
		&rec.Accuracy,
		&rec.Precision,
		&rec.Recall,
		&rec.F1,
		&rec.TN,
		&rec.FP,
		&rec.FN,
		&rec.TP,
	)
	return rec, err
}
