// Package pipeline wires the stages into a single batch run:
// load, engineer, balance, split, scale, fit, evaluate, write submission.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cardwatch/fraudml/config"
	"github.com/cardwatch/fraudml/dataset"
	"github.com/cardwatch/fraudml/evaluate"
	"github.com/cardwatch/fraudml/features"
	"github.com/cardwatch/fraudml/id"
	"github.com/cardwatch/fraudml/journal"
	"github.com/cardwatch/fraudml/model"
	"github.com/cardwatch/fraudml/sample"
)

// Runner executes one pipeline run from a validated config.
type Runner struct {
	Config  *config.Config
	Journal journal.Journal // optional run journal
	Out     io.Writer       // optional progress output
}

// Result summarizes a completed run.
type Result struct {
	RunID          string
	Report         evaluate.Report
	TrainRows      int
	BalancedRows   int
	TestRows       int
	SubmissionPath string
}

// Run executes the pipeline loop:
//  1. load train and test tables
//  2. engineer features (encoder fit on train only)
//  3. balance classes, split stratified, scale (scaler fit on train split only)
//  4. fit the classifier, evaluate on the validation split
//  5. predict the test set and write the submission
//
// The submission is written last, so schema or fit errors leave no partial
// output. If a journal is attached, the run record is written after the
// submission.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Config == nil {
		return Result{}, fmt.Errorf("pipeline: Config is required")
	}
	cfg := r.Config

	train, err := dataset.LoadCSV(cfg.Data.TrainPath)
	if err != nil {
		return Result{}, fmt.Errorf("load train: %w", err)
	}
	test, err := dataset.LoadCSV(cfg.Data.TestPath)
	if err != nil {
		return Result{}, fmt.Errorf("load test: %w", err)
	}
	r.progress("loaded %d train rows, %d test rows", train.NumRows(), test.NumRows())

	labels, err := train.Ints("is_fraud")
	if err != nil {
		return Result{}, fmt.Errorf("train labels: %w", err)
	}

	trainF, enc, err := features.Engineer(train, nil)
	if err != nil {
		return Result{}, fmt.Errorf("engineer train: %w", err)
	}
	r.progress("engineered %d features", len(trainF.Cols))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	smote := sample.SMOTE{Neighbors: cfg.Sampler.Neighbors, Seed: cfg.Sampler.Seed}
	balanced, balancedY, err := smote.Balance(trainF, labels)
	if err != nil {
		return Result{}, fmt.Errorf("balance: %w", err)
	}
	r.progress("balanced to %d rows", balanced.NumRows())

	split, err := sample.StratifiedSplit(balanced, balancedY, cfg.Split.TrainRatio, cfg.Split.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("split: %w", err)
	}

	scaler, err := features.FitScaler(split.TrainX)
	if err != nil {
		return Result{}, fmt.Errorf("fit scaler: %w", err)
	}
	trainX, err := scaler.Transform(split.TrainX)
	if err != nil {
		return Result{}, fmt.Errorf("scale train: %w", err)
	}
	valX, err := scaler.Transform(split.ValX)
	if err != nil {
		return Result{}, fmt.Errorf("scale validation: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	m := model.New(model.Config{
		Trees:        cfg.Model.Trees,
		LearningRate: cfg.Model.LearningRate,
		MaxDepth:     cfg.Model.MaxDepth,
		Seed:         cfg.Model.Seed,
	})
	if err := m.Fit(trainX, split.TrainY); err != nil {
		return Result{}, fmt.Errorf("fit model: %w", err)
	}
	r.progress("trained %d trees", cfg.Model.Trees)

	valPred, err := m.PredictThreshold(valX, cfg.Model.Threshold)
	if err != nil {
		return Result{}, fmt.Errorf("predict validation: %w", err)
	}
	report, err := evaluate.Evaluate(split.ValY, valPred)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate: %w", err)
	}

	// Held-out test set: fitted encoder and scaler applied, never refit.
	testF, _, err := features.Engineer(test, enc)
	if err != nil {
		return Result{}, fmt.Errorf("engineer test: %w", err)
	}
	testX, err := scaler.Transform(testF)
	if err != nil {
		return Result{}, fmt.Errorf("scale test: %w", err)
	}
	testPred, err := m.PredictThreshold(testX, cfg.Model.Threshold)
	if err != nil {
		return Result{}, fmt.Errorf("predict test: %w", err)
	}

	ids, err := test.Column("id")
	if err != nil {
		return Result{}, fmt.Errorf("test identifiers: %w", err)
	}
	if err := dataset.WriteSubmission(cfg.Data.SubmissionPath, ids, testPred); err != nil {
		return Result{}, fmt.Errorf("write submission: %w", err)
	}
	r.progress("wrote %d predictions to %s", len(testPred), cfg.Data.SubmissionPath)

	res := Result{
		RunID:          id.New(),
		Report:         report,
		TrainRows:      train.NumRows(),
		BalancedRows:   balanced.NumRows(),
		TestRows:       test.NumRows(),
		SubmissionPath: cfg.Data.SubmissionPath,
	}

	if r.Journal != nil {
		fraud := report.Classes[1]
		rec := journal.RunRecord{
			RunID:        res.RunID,
			Time:         time.Now().UTC(),
			TrainPath:    cfg.Data.TrainPath,
			TestPath:     cfg.Data.TestPath,
			TrainRows:    res.TrainRows,
			BalancedRows: res.BalancedRows,
			TestRows:     res.TestRows,
			Trees:        cfg.Model.Trees,
			LearningRate: cfg.Model.LearningRate,
			MaxDepth:     cfg.Model.MaxDepth,
			Threshold:    cfg.Model.Threshold,
			Accuracy:     report.Accuracy,
			Precision:    fraud.Precision,
			Recall:       fraud.Recall,
			F1:           fraud.F1,
			TN:           report.Confusion[0][0],
			FP:           report.Confusion[0][1],
			FN:           report.Confusion[1][0],
			TP:           report.Confusion[1][1],
		}
		if err := r.Journal.RecordRun(rec); err != nil {
			return Result{}, fmt.Errorf("journal run: %w", err)
		}
	}

	return res, nil
}

func (r *Runner) progress(format string, args ...any) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format+"\n", args...)
	}
}
