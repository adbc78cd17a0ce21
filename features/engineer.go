package features

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/cardwatch/fraudml/dataset"
)

// FeatureColumns is the engineered feature schema, in matrix column order.
// The raw name/address/date/time/dob columns are dropped; id and trans_num
// are identifiers and never enter the matrix.
var FeatureColumns = []string{
	"cc_num", "merchant", "category", "amt", "gender", "city", "state", "zip",
	"lat", "long", "city_pop", "job", "merch_lat", "merch_long",
	"hour", "day_of_week", "age", "distance", "amt_per_capita",
	"trans_count", "amt_ratio",
}

// transWindow is the trailing row window for the per-card transaction count,
// current row included.
const transWindow = 3

// Engineer derives the feature frame from a raw transaction table.
//
// When enc is nil a new encoder is fit from the table's categorical columns;
// otherwise the supplied encoder is applied as-is, with values unseen at fit
// time mapping to UnknownCode. The returned encoder is the one used, so the
// train-time call hands its encoder to the test-time call.
func Engineer(t *dataset.Table, enc *Encoder) (*dataset.Frame, *Encoder, error) {
	if enc == nil {
		var err error
		enc, err = FitEncoder(t)
		if err != nil {
			return nil, nil, err
		}
	} else {
		for _, col := range CategoricalColumns {
			if !t.HasColumn(col) {
				return nil, nil, EncodingMismatchError{Column: col}
			}
		}
	}

	amt, err := t.Floats("amt")
	if err != nil {
		return nil, nil, err
	}
	zip, err := t.Floats("zip")
	if err != nil {
		return nil, nil, err
	}
	lat, err := t.Floats("lat")
	if err != nil {
		return nil, nil, err
	}
	lon, err := t.Floats("long")
	if err != nil {
		return nil, nil, err
	}
	pop, err := t.Floats("city_pop")
	if err != nil {
		return nil, nil, err
	}
	mlat, err := t.Floats("merch_lat")
	if err != nil {
		return nil, nil, err
	}
	mlon, err := t.Floats("merch_long")
	if err != nil {
		return nil, nil, err
	}
	ccNum, err := t.Floats("cc_num")
	if err != nil {
		return nil, nil, err
	}
	cc, err := t.Column("cc_num")
	if err != nil {
		return nil, nil, err
	}
	dates, err := t.Column("trans_date")
	if err != nil {
		return nil, nil, err
	}
	times, err := t.Column("trans_time")
	if err != nil {
		return nil, nil, err
	}
	dob, err := t.Column("dob")
	if err != nil {
		return nil, nil, err
	}

	cats := make(map[string][]string, len(CategoricalColumns))
	for _, col := range CategoricalColumns {
		vals, err := t.Column(col)
		if err != nil {
			return nil, nil, err
		}
		cats[col] = vals
	}

	// Whole-table per-card mean amount. This intentionally includes rows
	// after the one being scored; see DESIGN.md on the amt_ratio lookahead.
	cardMean := perCardMean(cc, amt)

	nowYear := time.Now().Year()
	n := t.NumRows()
	x := make([][]float64, n)

	for i := 0; i < n; i++ {
		hour, err := parseHour(times[i])
		if err != nil {
			return nil, nil, fmt.Errorf("features: row %d: %w", i, err)
		}
		dow, err := parseWeekday(dates[i])
		if err != nil {
			return nil, nil, fmt.Errorf("features: row %d: %w", i, err)
		}
		birth, err := time.Parse("2006-01-02", dob[i])
		if err != nil {
			return nil, nil, fmt.Errorf("features: row %d: bad dob %q: %w", i, dob[i], err)
		}

		row := make([]float64, 0, len(FeatureColumns))
		row = append(row,
			ccNum[i],
			float64(enc.Code("merchant", cats["merchant"][i])),
			float64(enc.Code("category", cats["category"][i])),
			amt[i],
			float64(enc.Code("gender", cats["gender"][i])),
			float64(enc.Code("city", cats["city"][i])),
			float64(enc.Code("state", cats["state"][i])),
			zip[i],
			lat[i],
			lon[i],
			pop[i],
			float64(enc.Code("job", cats["job"][i])),
			mlat[i],
			mlon[i],
			float64(hour),
			float64(dow),
			float64(nowYear-birth.Year()),
			math.Hypot(lat[i]-mlat[i], lon[i]-mlon[i]),
			amt[i]/(pop[i]+1),
			float64(trailingCardCount(cc, i)),
			amt[i]/cardMean[cc[i]],
		)
		x[i] = row
	}

	return &dataset.Frame{Cols: append([]string(nil), FeatureColumns...), X: x}, enc, nil
}

// trailingCardCount counts rows with the same card in the last transWindow
// rows, current row included. Row order, not time order.
func trailingCardCount(cc []string, i int) int {
	count := 0
	for j := i - transWindow + 1; j <= i; j++ {
		if j >= 0 && cc[j] == cc[i] {
			count++
		}
	}
	return count
}

func perCardMean(cc []string, amt []float64) map[string]float64 {
	byCard := make(map[string][]float64)
	for i, c := range cc {
		byCard[c] = append(byCard[c], amt[i])
	}
	means := make(map[string]float64, len(byCard))
	for c, amts := range byCard {
		means[c] = stat.Mean(amts, nil)
	}
	return means
}

func parseHour(v string) (int, error) {
	tm, err := time.Parse("15:04:05", v)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", v, err)
	}
	return tm.Hour(), nil
}

func parseWeekday(v string) (int, error) {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return 0, fmt.Errorf("bad date %q: %w", v, err)
	}
	return int(d.Weekday()), nil
}
