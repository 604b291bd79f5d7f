// Package report turns the entries of a month into an ordered,
// percentage-weighted summary.
package report

import (
	"github.com/hourlog/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Bucket is the grouping key for aggregation. Entries are merged into
// one bucket only when both the project number and the project name
// match. An entry logged before a project rename therefore ends up in
// a different bucket than one logged after it.
type Bucket struct {
	ProjectID   string
	ProjectName string
}

// Aggregate reduces entries into per-project hour totals and the grand
// total. It is a pure function: the caller is responsible for limiting
// the entries to the period it wants aggregated.
//
// Summation uses decimals, so the totals are exact and independent of
// the order of the entries.
func Aggregate(entries []models.Entry) (map[Bucket]decimal.Decimal, decimal.Decimal) {
	buckets := make(map[Bucket]decimal.Decimal)
	total := decimal.Zero

	for _, entry := range entries {
		key := Bucket{
			ProjectID:   entry.ProjectID,
			ProjectName: entry.ProjectName,
		}

		buckets[key] = buckets[key].Add(entry.Hours)
		total = total.Add(entry.Hours)
	}

	return buckets, total
}
