package models

import (
	"strings"

	"github.com/hourlog/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry represents hours worked on a project on a specific day.
//
// ProjectID and ProjectName are copied from the project when the entry
// is created. They are a snapshot, not a foreign key: renaming or
// deleting a project does not change existing entries.
type Entry struct {
	DefaultModel
	Date        types.Date      `json:"date" gorm:"index" example:"2024-03-05"`         // Day the hours were worked
	ProjectID   string          `json:"projectId" example:"P-1042"`                     // Project number at the time the entry was created
	ProjectName string          `json:"projectName" example:"Website redesign"`         // Project name at the time the entry was created
	Hours       decimal.Decimal `json:"hours" gorm:"type:DECIMAL(20,8)" example:"3.50"` // Hours worked, zero or positive
}

func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.ProjectID = strings.TrimSpace(e.ProjectID)
	e.ProjectName = strings.TrimSpace(e.ProjectName)

	if e.ProjectID == "" {
		return ErrProjectIDRequired
	}

	if e.Date.IsZero() {
		return ErrEntryDateRequired
	}

	if e.Hours.IsNegative() {
		return ErrHoursNegative
	}

	return nil
}

// EntriesInMonth returns all entries with a date in the month.
//
// Dates are persisted as "yyyy-MM-dd" TEXT, so the half-open range
// [start, end) is filtered with plain string comparison.
func EntriesInMonth(db *gorm.DB, month types.Month) ([]Entry, error) {
	var entries []Entry

	err := db.
		Where("date >= ?", month.Start().String()).
		Where("date < ?", month.End().String()).
		Order("date ASC").
		Find(&entries).
		Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// PurgeMonth permanently deletes all entries with a date in the month
// and returns the number of deleted entries. This is irreversible.
func PurgeMonth(db *gorm.DB, month types.Month) (int64, error) {
	res := db.Unscoped().
		Where("date >= ?", month.Start().String()).
		Where("date < ?", month.End().String()).
		Delete(&Entry{})

	return res.RowsAffected, res.Error
}
