package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hourlog/backend/internal/models"
	"github.com/hourlog/backend/internal/types"
	"github.com/shopspring/decimal"
)

// EntryEditable represents all user configurable parameters
type EntryEditable struct {
	Date        types.Date      `json:"date" example:"2024-03-05"`              // Day the hours were worked
	ProjectID   string          `json:"projectId" example:"P-1042"`             // Project number to book the hours on
	ProjectName string          `json:"projectName" example:"Website redesign"` // Project name. Defaults to the name of the referenced project.
	Hours       decimal.Decimal `json:"hours" example:"3.50" minimum:"0"`       // Hours worked, zero or positive
}

func (editable EntryEditable) model() models.Entry {
	return models.Entry{
		Date:        editable.Date,
		ProjectID:   editable.ProjectID,
		ProjectName: editable.ProjectName,
		Hours:       editable.Hours,
	}
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/entries/d1b4e09a-4a43-4107-b913-4159a5c0251f"` // The entry itself
}

type Entry struct {
	models.DefaultModel
	EntryEditable
	Links EntryLinks `json:"links"`
}

func newEntry(c *gin.Context, model models.Entry) Entry {
	url := c.GetString("baseURL")

	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			Date:        model.Date,
			ProjectID:   model.ProjectID,
			ProjectName: model.ProjectName,
			Hours:       model.Hours,
		},
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/v1/entries/%s", url, model.ID),
		},
	}
}

type EntryListResponse struct {
	Data       []Entry     `json:"data"`                                                          // List of Entries
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EntryCreateResponse struct {
	Data  []EntryResponse `json:"data"`                                                          // List of the created Entries or their respective error
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *EntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EntryResponse struct {
	Data  *Entry  `json:"data"`                                                          // Data for the Entry
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EntryQueryFilter struct {
	Month     types.Month `form:"month" filterField:"false"`     // By month the entry date falls in
	ProjectID string      `form:"project"`                       // By project number
	FromDate  types.Date  `form:"fromDate" filterField:"false"`  // Entries on or after this date
	UntilDate types.Date  `form:"untilDate" filterField:"false"` // Entries on or before this date
	Offset    uint        `form:"offset" filterField:"false"`    // The offset of the first Entry returned. Defaults to 0.
	Limit     int         `form:"limit" filterField:"false"`     // Maximum number of Entries to return. Defaults to 50.
}

func (f EntryQueryFilter) model() models.Entry {
	return models.Entry{
		ProjectID: f.ProjectID,
	}
}
