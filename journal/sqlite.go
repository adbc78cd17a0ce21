package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, time, train_path, test_path, train_rows, balanced_rows, test_rows,
		 trees, learning_rate, max_depth, threshold,
		 accuracy, precision, recall, f1, tn, fp, fn, tp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Time, r.TrainPath, r.TestPath, r.TrainRows, r.BalancedRows, r.TestRows,
		r.Trees, r.LearningRate, r.MaxDepth, r.Threshold,
		r.Accuracy, r.Precision, r.Recall, r.F1, r.TN, r.FP, r.FN, r.TP,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
