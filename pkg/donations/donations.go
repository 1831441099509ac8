// Package donations reduces the donation history table to the two facts
// carried per patron: lifetime giving and the most recent gift.
package donations

import (
	"strings"

	"github.com/agentstation/utc"

	"github.com/cuebox/stagehand/pkg/normalize"
)

// paidStatus is the only status value that keeps a row in the aggregation
// when the source table carries a status column.
const paidStatus = "paid"

// Record is one row of the donation history table, in source order.
// All fields are raw cell values.
type Record struct {
	PatronID string
	Amount   string
	Date     string
	Status   string
}

// Recent describes a patron's most recent paid donation. The date is
// always parsable when a Recent exists; the amount may not be, in which
// case HasAmount is false and the amount renders empty downstream.
type Recent struct {
	Date      utc.Time
	Amount    float64
	HasAmount bool
}

// Aggregates holds the per-patron donation facts for one run. Patrons
// without a usable record are absent, not zeroed.
type Aggregates struct {
	lifetime map[string]float64
	recent   map[string]Recent
}

// Aggregate reduces donation rows in table order. When statusPresent is
// true only rows whose status normalizes to "paid" participate; a table
// without a status column keeps every row. Lifetime sums parsable amounts
// per patron. Most-recent keeps the row with the maximum parsable date;
// an exact date tie keeps the earlier row.
func Aggregate(records []Record, statusPresent bool) *Aggregates {
	agg := &Aggregates{
		lifetime: make(map[string]float64),
		recent:   make(map[string]Recent),
	}

	for _, rec := range records {
		if statusPresent && !strings.EqualFold(normalize.String(rec.Status), paidStatus) {
			continue
		}
		id := normalize.String(rec.PatronID)

		amount, hasAmount := normalize.ParseAmount(rec.Amount)
		if hasAmount {
			agg.lifetime[id] += amount
		}

		date, ok := normalize.ParseTimestamp(rec.Date)
		if !ok {
			continue
		}
		if current, seen := agg.recent[id]; seen && !date.Time.After(current.Date.Time) {
			continue
		}
		agg.recent[id] = Recent{Date: date, Amount: amount, HasAmount: hasAmount}
	}

	return agg
}

// Lifetime returns the summed paid amounts for a patron. ok is false when
// the patron has no row with a parsable amount.
func (a *Aggregates) Lifetime(patronID string) (total float64, ok bool) {
	total, ok = a.lifetime[patronID]
	return total, ok
}

// MostRecent returns the patron's latest paid donation. ok is false when
// no retained row had a parsable date.
func (a *Aggregates) MostRecent(patronID string) (Recent, bool) {
	recent, ok := a.recent[patronID]
	return recent, ok
}
