// Package features turns raw transaction tables into numeric feature frames.
// The fitted artifacts (Encoder, Scaler) are plain values: fit once on
// training data, passed explicitly, applied read-only everywhere else.
package features

import (
	"fmt"
	"sort"

	"github.com/cardwatch/fraudml/dataset"
)

// UnknownCode is the sentinel for category values never seen during fitting.
const UnknownCode = -1

// CategoricalColumns are the raw columns mapped to ordinal codes.
var CategoricalColumns = []string{"category", "gender", "job", "state", "city", "merchant"}

// EncodingMismatchError reports a fitted encoder applied to a table that
// lacks one of the categorical columns it was fit on.
type EncodingMismatchError struct {
	Column string
}

func (e EncodingMismatchError) Error() string {
	return fmt.Sprintf("features: fitted encoder expects column %q", e.Column)
}

// Encoder maps categorical values to ordinal integer codes, one table per
// column. Codes are assigned by sorted value order so fitting is
// deterministic regardless of row order.
type Encoder struct {
	codes map[string]map[string]int
}

// FitEncoder builds an encoder from the table's categorical columns.
func FitEncoder(t *dataset.Table) (*Encoder, error) {
	enc := &Encoder{codes: make(map[string]map[string]int, len(CategoricalColumns))}
	for _, col := range CategoricalColumns {
		vals, err := t.Column(col)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{}, len(vals))
		for _, v := range vals {
			seen[v] = struct{}{}
		}
		uniq := make([]string, 0, len(seen))
		for v := range seen {
			uniq = append(uniq, v)
		}
		sort.Strings(uniq)

		table := make(map[string]int, len(uniq))
		for i, v := range uniq {
			table[v] = i
		}
		enc.codes[col] = table
	}
	return enc, nil
}

// Code returns the ordinal code for a value, or UnknownCode if the value was
// not seen when the encoder was fit.
func (e *Encoder) Code(column, value string) int {
	if c, ok := e.codes[column][value]; ok {
		return c
	}
	return UnknownCode
}

// Cardinality returns the number of distinct values fit for a column.
func (e *Encoder) Cardinality(column string) int {
	return len(e.codes[column])
}
