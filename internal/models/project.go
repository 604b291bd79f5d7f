package models

import (
	"strings"

	"gorm.io/gorm"
)

// Project represents a project that hours can be logged on.
//
// The ProjectID is the user-facing project number. It is the key
// entries are grouped by, but it is not unique at the storage layer.
type Project struct {
	DefaultModel
	ProjectID string `json:"projectId" example:"P-1042"`      // User-facing project number
	Name      string `json:"name" example:"Website redesign"` // Name of the project
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.ProjectID = strings.TrimSpace(p.ProjectID)
	p.Name = strings.TrimSpace(p.Name)

	if p.ProjectID == "" {
		return ErrProjectIDRequired
	}

	if p.Name == "" {
		return ErrProjectNameRequired
	}

	return nil
}

// Entries returns all entries that were logged on this project.
//
// Entries carry a snapshot of the project number taken when they were
// created, so this includes entries created before a rename.
func (p Project) Entries(db *gorm.DB) ([]Entry, error) {
	var entries []Entry

	err := db.Where(&Entry{ProjectID: p.ProjectID}).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntries removes all entries logged on this project.
//
// This is a separate database call from deleting the project itself.
// A crash between the two leaves a project without entries, which is
// an accepted inconsistency.
func (p Project) DeleteEntries(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("project_id = ?", p.ProjectID).
		Delete(&Entry{})

	return res.RowsAffected, res.Error
}
