package dataset

import (
	"fmt"
	"math/rand"
	"strconv"
)

// RawColumns is the transaction schema the pipeline expects, label last.
// Test data carries the same columns minus is_fraud.
var RawColumns = []string{
	"id", "trans_date", "trans_time", "cc_num", "merchant", "category",
	"amt", "first", "last", "gender", "street", "city", "state", "zip",
	"lat", "long", "city_pop", "job", "dob", "trans_num",
	"merch_lat", "merch_long", "is_fraud",
}

var (
	synthCategories = []string{"grocery_pos", "gas_transport", "shopping_net", "misc_net", "entertainment", "travel"}
	synthMerchants  = []string{"fraud_Kirlin", "fraud_Sporer", "fraud_Heller", "fraud_Koss", "fraud_Beier", "fraud_Stracke"}
	synthJobs       = []string{"Engineer", "Nurse", "Teacher", "Pilot", "Barista", "Surveyor"}
	synthStates     = []string{"NC", "WA", "ID", "MT", "VA", "PA"}
	synthCities     = []string{"Moravian Falls", "Orient", "Malad City", "Boulder", "Doe Hill", "Dublin"}
	synthFirst      = []string{"Jennifer", "Stephanie", "Edward", "Jeremy", "Tyler", "Misty"}
	synthLast       = []string{"Banks", "Gill", "Sanchez", "White", "Garcia", "Hart"}
)

// GenerateSynthetic produces a labelled transaction table with patterned
// fraud rows: high amounts, small hours, distant merchants. Useful for demos
// and package tests; not a substitute for real data.
func GenerateSynthetic(n int, fraudRate float64, seed int64) *Table {
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		fraud := rng.Float64() < fraudRate

		var amt, hourF, merchOffset float64
		if fraud {
			amt = 300 + rng.Float64()*1500
			hourF = rng.Float64() * 5 // small hours
			merchOffset = 0.8 + rng.Float64()*2
		} else {
			amt = 5 + rng.Float64()*180
			hourF = 7 + rng.Float64()*14
			merchOffset = rng.Float64() * 0.4
		}

		lat := 30 + rng.Float64()*15
		lon := -110 + rng.Float64()*30
		card := 4000_0000_0000 + int64(rng.Intn(40)) // a few dozen distinct cards

		rows[i] = []string{
			strconv.Itoa(i),
			fmt.Sprintf("2024-%02d-%02d", 1+rng.Intn(12), 1+rng.Intn(28)),
			fmt.Sprintf("%02d:%02d:%02d", int(hourF), rng.Intn(60), rng.Intn(60)),
			strconv.FormatInt(card, 10),
			synthMerchants[rng.Intn(len(synthMerchants))],
			synthCategories[rng.Intn(len(synthCategories))],
			strconv.FormatFloat(amt, 'f', 2, 64),
			synthFirst[rng.Intn(len(synthFirst))],
			synthLast[rng.Intn(len(synthLast))],
			[]string{"M", "F"}[rng.Intn(2)],
			fmt.Sprintf("%d Main St", 100+rng.Intn(900)),
			synthCities[rng.Intn(len(synthCities))],
			synthStates[rng.Intn(len(synthStates))],
			strconv.Itoa(10000 + rng.Intn(89999)),
			strconv.FormatFloat(lat, 'f', 4, 64),
			strconv.FormatFloat(lon, 'f', 4, 64),
			strconv.Itoa(200 + rng.Intn(900000)),
			synthJobs[rng.Intn(len(synthJobs))],
			fmt.Sprintf("%d-%02d-%02d", 1950+rng.Intn(50), 1+rng.Intn(12), 1+rng.Intn(28)),
			fmt.Sprintf("tx%08d", i),
			strconv.FormatFloat(lat+merchOffset, 'f', 4, 64),
			strconv.FormatFloat(lon-merchOffset, 'f', 4, 64),
			boolLabel(fraud),
		}
	}

	t, _ := NewTable(append([]string(nil), RawColumns...), rows)
	return t
}

// DropLabel returns a copy of the table without the is_fraud column, matching
// the shape of held-out test data.
func (t *Table) DropLabel() *Table {
	li, ok := t.index["is_fraud"]
	if !ok {
		return t
	}
	cols := make([]string, 0, len(t.Columns)-1)
	cols = append(cols, t.Columns[:li]...)
	cols = append(cols, t.Columns[li+1:]...)

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		nr := make([]string, 0, len(row)-1)
		nr = append(nr, row[:li]...)
		nr = append(nr, row[li+1:]...)
		rows[r] = nr
	}
	out, _ := NewTable(cols, rows)
	return out
}

func boolLabel(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
