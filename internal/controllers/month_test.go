package controllers_test

import (
	"net/http"
	"testing"

	"github.com/hourlog/backend/internal/controllers"
	"github.com/hourlog/backend/internal/report"
	"github.com/hourlog/backend/internal/types"
	"github.com/hourlog/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMarchEntries sets up the entries used by the month tests:
// 5 hours on P-1 (in two entries), 5 hours on P-2, all in March 2024.
func (suite *TestSuiteStandard) createMarchEntries() {
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-1", ProjectName: "Alpha", Date: types.NewDate(2024, 3, 5), Hours: decimal.NewFromFloat(3.5)})
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-1", ProjectName: "Alpha", Date: types.NewDate(2024, 3, 12), Hours: decimal.NewFromFloat(1.5)})
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-2", ProjectName: "Beta", Date: types.NewDate(2024, 3, 20), Hours: decimal.NewFromFloat(5)})
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/months/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthReport() {
	suite.createMarchEntries()

	r := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/settings/employee_name", controllers.SettingEditable{Value: "Jane Doe"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	rep := response.Data
	require.NotNil(suite.T(), rep)

	assert.Equal(suite.T(), "Monthly Report — 2024-03", rep.Title)
	assert.Equal(suite.T(), "Jane Doe", rep.Metadata.EmployeeName)
	assert.True(suite.T(), rep.PeriodTotal.Equal(decimal.NewFromInt(10)))

	// Two projects at 50% each, ordered by project number on the tie,
	// then the totals row
	require.Len(suite.T(), rep.Rows, 3)

	assert.Equal(suite.T(), "P-1", rep.Rows[0].ProjectID)
	assert.True(suite.T(), rep.Rows[0].Percentage.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), rep.Rows[0].Highlight)

	assert.Equal(suite.T(), "P-2", rep.Rows[1].ProjectID)
	assert.True(suite.T(), rep.Rows[1].Percentage.Equal(decimal.NewFromInt(50)))

	totalRow := rep.Rows[2]
	assert.Equal(suite.T(), report.TotalMarker, totalRow.ProjectID)
	assert.True(suite.T(), totalRow.Total)
	assert.False(suite.T(), totalRow.Highlight)
	assert.True(suite.T(), totalRow.Percentage.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), totalRow.Hours.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestMonthReportEmpty() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Only the totals row, with zero hours
	require.Len(suite.T(), response.Data.Rows, 1)
	assert.True(suite.T(), response.Data.Rows[0].Total)
	assert.True(suite.T(), response.Data.PeriodTotal.IsZero())
}

func (suite *TestSuiteStandard) TestMonthParamRequired() {
	tests := []struct {
		name   string
		method string
		url    string
	}{
		{"report", http.MethodGet, "http://example.com/v1/months"},
		{"report invalid month", http.MethodGet, "http://example.com/v1/months?month=March"},
		{"purge", http.MethodDelete, "http://example.com/v1/months"},
		{"export", http.MethodPost, "http://example.com/v1/months/export"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, tt.method, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthPurgeRequiresConfirmation() {
	suite.createMarchEntries()

	tests := []struct {
		name  string
		query string
	}{
		{"no confirmation", "month=2024-03"},
		{"wrong confirmation", "month=2024-03&confirm=yes"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodDelete, "http://example.com/v1/months?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Nothing was deleted
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries?month=2024-03", "")
	var response controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 3)
}

func (suite *TestSuiteStandard) TestMonthPurge() {
	suite.createMarchEntries()
	keep := suite.createTestEntry(controllers.EntryEditable{Date: types.NewDate(2024, 4, 1)})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/months?month=2024-03&confirm=yes-please-delete-this-month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.PurgeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(3), response.Data.Purged)

	// The April entry survives
	rec := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries", "")
	var entries controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &rec, &entries)
	require.Len(suite.T(), entries.Data, 1)
	assert.Equal(suite.T(), keep.Data.ID, entries.Data[0].ID)
}

func (suite *TestSuiteStandard) TestMonthExport() {
	suite.createMarchEntries()

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/months/export?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "Report_2024-03.pdf")
	assert.True(suite.T(), len(r.Body.Bytes()) > 4 && string(r.Body.Bytes()[:4]) == "%PDF", "response is not a PDF document")

	// Exporting does not delete anything
	rec := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries?month=2024-03", "")
	var entries controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &rec, &entries)
	assert.Len(suite.T(), entries.Data, 3)
}

func (suite *TestSuiteStandard) TestMonthExportEmpty() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/months/export?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthExportPurgeRequiresConfirmation() {
	suite.createMarchEntries()

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/months/export?month=2024-03&purge=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Without the confirmation, no document is created and nothing is deleted
	rec := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries?month=2024-03", "")
	var entries controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &rec, &entries)
	assert.Len(suite.T(), entries.Data, 3)
}

func (suite *TestSuiteStandard) TestMonthExportPurge() {
	suite.createMarchEntries()

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/months/export?month=2024-03&purge=true&confirm=yes-please-delete-this-month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "3", r.Header().Get("X-Purged-Entries"))

	rec := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries?month=2024-03", "")
	var entries controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &rec, &entries)
	assert.Empty(suite.T(), entries.Data)
}
