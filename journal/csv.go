// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "time", "train_path", "test_path",
	"train_rows", "balanced_rows", "test_rows",
	"trees", "learning_rate", "max_depth", "threshold",
	"accuracy", "precision", "recall", "f1",
	"tn", "fp", "fn", "tp",
}

type CSVJournal struct {
	runs *csv.Writer
	rf   *os.File
}

// NewCSV opens (or creates) an append-mode run journal. The header is
// written only when the file is new.
func NewCSV(path string) (*CSVJournal, error) {
	rf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	info, err := rf.Stat()
	if err != nil {
		rf.Close()
		return nil, err
	}

	w := csv.NewWriter(rf)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			rf.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			rf.Close()
			return nil, err
		}
	}

	return &CSVJournal{runs: w, rf: rf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Time.Format(time.RFC3339),
		r.TrainPath,
		r.TestPath,
		strconv.Itoa(r.TrainRows),
		strconv.Itoa(r.BalancedRows),
		strconv.Itoa(r.TestRows),
		strconv.Itoa(r.Trees),
		f(r.LearningRate),
		strconv.Itoa(r.MaxDepth),
		f(r.Threshold),
		f(r.Accuracy),
		f(r.Precision),
		f(r.Recall),
		f(r.F1),
		strconv.Itoa(r.TN),
		strconv.Itoa(r.FP),
		strconv.Itoa(r.FN),
		strconv.Itoa(r.TP),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	return j.rf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
