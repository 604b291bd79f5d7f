package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These are checked in BeforeSave hooks so that no
// invalid record ever reaches the database.
var (
	ErrProjectNameRequired = errors.New("the project name must be set")
	ErrProjectIDRequired   = errors.New("the project number must be set")
	ErrEntryDateRequired   = errors.New("the date of the entry must be set")
	ErrHoursNegative       = errors.New("the hours of an entry must be zero or positive")
	ErrSettingKeyUnknown   = errors.New("this settings key does not exist")
)

// errorIsNotFound reports whether an error means "no such record",
// before or after the query callback rewrote it.
func errorIsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
