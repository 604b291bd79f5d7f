package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hourlog/backend/internal/controllers"
	"github.com/hourlog/backend/internal/models"
	"github.com/hourlog/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestProject(p controllers.ProjectEditable, expectedStatus ...int) controllers.ProjectResponse {
	if p.ProjectID == "" {
		p.ProjectID = "P-1000"
	}

	if p.Name == "" {
		p.Name = "Test project"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []controllers.ProjectEditable{p}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response controllers.ProjectCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return controllers.ProjectResponse{}
}

func (suite *TestSuiteStandard) TestProjectOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))

	project := suite.createTestProject(controllers.ProjectEditable{})
	r = test.Request(suite.T(), suite.router, http.MethodOptions, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestProjectCreate() {
	project := suite.createTestProject(controllers.ProjectEditable{
		ProjectID: "P-1042",
		Name:      "Website redesign",
	})

	require.NotNil(suite.T(), project.Data)
	assert.Equal(suite.T(), "P-1042", project.Data.ProjectID)
	assert.Equal(suite.T(), "Website redesign", project.Data.Name)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/projects/%s", project.Data.ID), project.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestProjectCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"not an array", controllers.ProjectEditable{Name: "Not in an array"}},
		{"broken json", `{ "name": }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/projects", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectCreateValidationError() {
	body := []controllers.ProjectEditable{
		{ProjectID: "P-1", Name: "Valid"},
		{ProjectID: "", Name: "No project number"},
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response controllers.ProjectCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), models.ErrProjectIDRequired.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestProjectsGetSorted() {
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-1", Name: "zebra"})
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-2", Name: "Alpha"})
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-3", Name: "beta"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Sorted by name, case-insensitive
	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Alpha", response.Data[0].Name)
	assert.Equal(suite.T(), "beta", response.Data[1].Name)
	assert.Equal(suite.T(), "zebra", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestProjectsGetFilter() {
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-1", Name: "Website redesign"})
	suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-2", Name: "Internal tooling"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"by project number", "projectId=P-1", 1},
		{"by name substring", "name=redesign", 1},
		{"no match", "projectId=P-404", 0},
		{"no filter", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.ProjectListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsPagination() {
	for i := 0; i < 5; i++ {
		suite.createTestProject(controllers.ProjectEditable{ProjectID: fmt.Sprintf("P-%d", i), Name: fmt.Sprintf("Project %d", i)})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestProjectGetSingle() {
	project := suite.createTestProject(controllers.ProjectEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodGet, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), project.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestProjectGetNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects/4e743e94-6a4b-44d6-aba5-d77c82103fa7", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectGetInvalidID() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectUpdate() {
	project := suite.createTestProject(controllers.ProjectEditable{Name: "Old name"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, project.Data.Links.Self, map[string]any{
		"name": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "New name", response.Data.Name)
	assert.Equal(suite.T(), project.Data.ProjectID, response.Data.ProjectID)
}

func (suite *TestSuiteStandard) TestProjectDelete() {
	project := suite.createTestProject(controllers.ProjectEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodGet, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectDeleteCascade() {
	project := suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-7"})
	entry := suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-7"})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("%s?cascade=true", project.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectDeleteKeepsEntries() {
	project := suite.createTestProject(controllers.ProjectEditable{ProjectID: "P-7"})
	entry := suite.createTestEntry(controllers.EntryEditable{ProjectID: "P-7"})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Without cascade, entries keep their project snapshot
	r = test.Request(suite.T(), suite.router, http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response controllers.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
