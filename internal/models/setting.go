package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings keys known to the backend. No other keys are read or written.
const (
	SettingEmployeeName   = "employee_name"
	SettingEmployeeNumber = "employee_number"
)

// SettingKeys lists all valid settings keys.
var SettingKeys = []string{SettingEmployeeName, SettingEmployeeNumber}

// Setting is a single string key/value pair.
type Setting struct {
	Timestamps
	Key   string `json:"key" gorm:"primaryKey" example:"employee_name"` // Key of the setting
	Value string `json:"value" example:"Jane Doe"`                      // Value of the setting
}

func (s *Setting) BeforeSave(_ *gorm.DB) error {
	if !IsSettingKey(s.Key) {
		return ErrSettingKeyUnknown
	}

	return nil
}

// IsSettingKey reports whether the key is one of the known settings keys.
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}

	return false
}

// GetSetting returns the value for a key. A key that has never been
// written reads as the empty string.
func GetSetting(db *gorm.DB, key string) (string, error) {
	if !IsSettingKey(key) {
		return "", ErrSettingKeyUnknown
	}

	var setting Setting
	err := db.Where(&Setting{Key: key}).First(&setting).Error
	if err != nil {
		if errorIsNotFound(err) {
			return "", nil
		}
		return "", err
	}

	return setting.Value, nil
}

// SetSetting writes the value for a key with upsert semantics.
func SetSetting(db *gorm.DB, key, value string) error {
	setting := Setting{Key: key, Value: value}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
