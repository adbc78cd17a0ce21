// Package evaluate computes binary classification metrics and renders them.
package evaluate

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ClassMetrics holds per-class precision, recall, F1 and support.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is the full validation summary. Confusion is indexed
// [actual][predicted], so Confusion[0][1] is the false-positive count.
type Report struct {
	Confusion [2][2]int
	Classes   [2]ClassMetrics
	Accuracy  float64
	MacroF1   float64
}

// Evaluate computes the report from true and predicted binary labels.
// Pure read-only reporting.
func Evaluate(yTrue, yPred []int) (Report, error) {
	if len(yTrue) != len(yPred) {
		return Report{}, fmt.Errorf("evaluate: %d true labels but %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return Report{}, fmt.Errorf("evaluate: no labels")
	}

	var r Report
	for i := range yTrue {
		if yTrue[i] < 0 || yTrue[i] > 1 || yPred[i] < 0 || yPred[i] > 1 {
			return Report{}, fmt.Errorf("evaluate: non-binary label at row %d", i)
		}
		r.Confusion[yTrue[i]][yPred[i]]++
	}

	correct := r.Confusion[0][0] + r.Confusion[1][1]
	r.Accuracy = float64(correct) / float64(len(yTrue))

	for class := 0; class < 2; class++ {
		tp := r.Confusion[class][class]
		fp := r.Confusion[1-class][class]
		fn := r.Confusion[class][1-class]

		var m ClassMetrics
		m.Support = r.Confusion[class][0] + r.Confusion[class][1]
		if tp+fp > 0 {
			m.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			m.Recall = float64(tp) / float64(tp+fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.Classes[class] = m
	}
	r.MacroF1 = (r.Classes[0].F1 + r.Classes[1].F1) / 2

	return r, nil
}

// Render writes the classification report and confusion matrix as tables.
func (r Report) Render(w io.Writer) {
	rep := table.NewWriter()
	rep.SetOutputMirror(w)
	rep.SetStyle(table.StyleLight)
	rep.AppendHeader(table.Row{"class", "precision", "recall", "f1", "support"})
	for class, name := range []string{"legit (0)", "fraud (1)"} {
		m := r.Classes[class]
		rep.AppendRow(table.Row{
			name,
			fmt.Sprintf("%.4f", m.Precision),
			fmt.Sprintf("%.4f", m.Recall),
			fmt.Sprintf("%.4f", m.F1),
			m.Support,
		})
	}
	rep.AppendFooter(table.Row{"accuracy", "", "", fmt.Sprintf("%.4f", r.Accuracy), r.Classes[0].Support + r.Classes[1].Support})
	rep.AppendFooter(table.Row{"macro f1", "", "", fmt.Sprintf("%.4f", r.MacroF1), ""})
	rep.Render()

	cm := table.NewWriter()
	cm.SetOutputMirror(w)
	cm.SetStyle(table.StyleLight)
	cm.AppendHeader(table.Row{"", "pred 0", "pred 1"})
	cm.AppendRow(table.Row{"actual 0", r.Confusion[0][0], r.Confusion[0][1]})
	cm.AppendRow(table.Row{"actual 1", r.Confusion[1][0], r.Confusion[1][1]})
	cm.Render()
}
