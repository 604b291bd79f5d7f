package report

import (
	"fmt"
	"sort"

	"github.com/hourlog/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TotalMarker is the project number of the synthetic totals row.
const TotalMarker = "TOTAL"

// Metadata is rendered into the report header.
type Metadata struct {
	EmployeeName   string `json:"employeeName" example:"Jane Doe"`
	EmployeeNumber string `json:"employeeNumber" example:"4711"`
	MonthLabel     string `json:"monthLabel" example:"2024-03"`
	PrintDate      string `json:"printDate" example:"2024-04-01"`
}

// Row is one line of the report table.
type Row struct {
	Percentage  decimal.Decimal `json:"percentage" example:"50"`                // Share of the month's total hours
	ProjectID   string          `json:"projectId" example:"P-1042"`             // Project number, TOTAL for the totals row
	ProjectName string          `json:"projectName" example:"Website redesign"` // Project name, empty for the totals row
	Hours       decimal.Decimal `json:"hours" example:"5"`                      // Hours worked on the project in the month
	Highlight   bool            `json:"highlight" example:"true"`               // Rows with a positive percentage are highlighted
	Total       bool            `json:"total" example:"false"`                  // The totals row is styled bold and centered, never highlighted
}

// Report is the complete monthly summary, ready for rendering.
type Report struct {
	Title       string          `json:"title" example:"Monthly Report — 2024-03"`
	Metadata    Metadata        `json:"metadata"`
	Rows        []Row           `json:"rows"`
	PeriodTotal decimal.Decimal `json:"periodTotal" example:"10"`
}

var hundred = decimal.NewFromInt(100)

// Build turns aggregated buckets into the ordered report rows.
//
// Rows are sorted descending by percentage. Equal percentages are
// ordered by project number, then project name, ascending, so that the
// output is reproducible. The synthetic totals row is always last.
//
// When the period total is zero every percentage is zero, there is no
// division by zero.
func Build(buckets map[Bucket]decimal.Decimal, total decimal.Decimal, meta Metadata) Report {
	rows := make([]Row, 0, len(buckets)+1)

	for bucket, hours := range buckets {
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = hours.Div(total).Mul(hundred)
		}

		rows = append(rows, Row{
			Percentage:  percentage,
			ProjectID:   bucket.ProjectID,
			ProjectName: bucket.ProjectName,
			Hours:       hours,
			Highlight:   percentage.IsPositive(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Percentage.Equal(rows[j].Percentage) {
			return rows[i].Percentage.GreaterThan(rows[j].Percentage)
		}

		if rows[i].ProjectID != rows[j].ProjectID {
			return rows[i].ProjectID < rows[j].ProjectID
		}

		return rows[i].ProjectName < rows[j].ProjectName
	})

	rows = append(rows, Row{
		Percentage: hundred,
		ProjectID:  TotalMarker,
		Hours:      total,
		Total:      true,
	})

	return Report{
		Title:       fmt.Sprintf("Monthly Report — %s", meta.MonthLabel),
		Metadata:    meta,
		Rows:        rows,
		PeriodTotal: total,
	}
}

// Filename returns the file name of the export artifact for a month.
func Filename(month types.Month) string {
	return fmt.Sprintf("Report_%s.pdf", month)
}
