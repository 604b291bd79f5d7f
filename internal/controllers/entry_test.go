package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hourlog/backend/internal/controllers"
	"github.com/hourlog/backend/internal/types"
	"github.com/hourlog/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestEntry(e controllers.EntryEditable, expectedStatus ...int) controllers.EntryResponse {
	if e.ProjectID == "" {
		e.ProjectID = "P-1000"
	}

	if e.ProjectName == "" {
		e.ProjectName = "Test project"
	}

	if e.Date.IsZero() {
		e.Date = types.NewDate(2024, 3, 5)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []controllers.EntryEditable{e}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/entries", body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response controllers.EntryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return controllers.EntryResponse{}
}

func (suite *TestSuiteStandard) TestEntryOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestEntryCreate() {
	entry := suite.createTestEntry(controllers.EntryEditable{
		Date:        types.NewDate(2024, 3, 5),
		ProjectID:   "P-1042",
		ProjectName: "Website redesign",
		Hours:       decimal.NewFromFloat(3.5),
	})

	require.NotNil(suite.T(), entry.Data)
	assert.Equal(suite.T(), "P-1042", entry.Data.ProjectID)
	assert.True(suite.T(), entry.Data.Hours.Equal(decimal.NewFromFloat(3.5)))
}

func (suite *TestSuiteStandard) TestEntryCreateCopiesProjectName() {
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-7", Name: "Internal tooling"})

	body := []controllers.EntryEditable{{
		Date:      types.NewDate(2024, 3, 5),
		ProjectID: "P-7",
		Hours:     decimal.NewFromFloat(1),
	}}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/entries", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.EntryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Internal tooling", response.Data[0].Data.ProjectName)
}

func (suite *TestSuiteStandard) TestEntryCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"broken json", `{ "date": }`},
		{"invalid date", `[{ "date": "03/05/2024", "projectId": "P-1" }]`},
		{"negative hours", `[{ "date": "2024-03-05", "projectId": "P-1", "hours": "-1" }]`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/entries", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesGetFilters() {
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-1", Date: types.NewDate(2024, 3, 1)})
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-1", Date: types.NewDate(2024, 3, 31)})
	suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-2", Date: types.NewDate(2024, 4, 1)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"by month", "month=2024-03", 2},
		{"by month without entries", "month=2024-05", 0},
		{"by project", "project=P-2", 1},
		{"from date", "fromDate=2024-03-31", 2},
		{"until date", "untilDate=2024-03-31", 2},
		{"date range", "fromDate=2024-03-02&untilDate=2024-03-31", 1},
		{"month and project", "month=2024-03&project=P-2", 0},
		{"no filter", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/entries?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.EntryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesGetSortedByDate() {
	second := suite.createTestEntry(controllers.EntryEditable{Date: types.NewDate(2024, 3, 15)})
	first := suite.createTestEntry(controllers.EntryEditable{Date: types.NewDate(2024, 3, 1)})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), first.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), second.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestEntriesInvalidMonthFilter() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEntryUpdate() {
	entry := suite.createTestEntry(controllers.EntryEditable{Hours: decimal.NewFromFloat(2)})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"hours": "4.25",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Hours.Equal(decimal.NewFromFloat(4.25)))
}

func (suite *TestSuiteStandard) TestEntryDelete() {
	entry := suite.createTestEntry(controllers.EntryEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEntryGetNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/entries/4e743e94-6a4b-44d6-aba5-d77c82103fa7", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
