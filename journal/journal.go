// Package journal records pipeline runs: configuration, data sizes, and
// validation metrics, to CSV or SQLite.
package journal

import "time"

// RunRecord is one completed pipeline run.
type RunRecord struct {
	RunID        string
	Time         time.Time
	TrainPath    string
	TestPath     string
	TrainRows    int
	BalancedRows int
	TestRows     int
	Trees        int
	LearningRate float64
	MaxDepth     int
	Threshold    float64
	Accuracy     float64
	Precision    float64
	Recall       float64
	F1           float64
	TN, FP       int
	FN, TP       int
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
