package controllers

import (
	"errors"
	"net/http"

	"github.com/hourlog/backend/internal/models"
	"github.com/hourlog/backend/internal/workflow"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, workflow.ErrExportInProgress) {
		return http.StatusConflict
	}

	if errors.Is(err, workflow.ErrNothingToExport) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errPurgeConfirmation  = errors.New("the confirmation for deleting this month's entries was incorrect")
	errExportConfirmation = errors.New("the confirmation for deleting this month's entries after the export was incorrect, the document was not created")
)

// purgeConfirmation is the exact phrase that must be sent to delete all
// entries of a month. Deleting is irreversible, anything other than
// this phrase means "keep the data".
const purgeConfirmation = "yes-please-delete-this-month"
