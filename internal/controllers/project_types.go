package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hourlog/backend/internal/models"
)

// ProjectEditable represents all user configurable parameters
type ProjectEditable struct {
	ProjectID string `json:"projectId" example:"P-1042" default:""`      // User-facing project number
	Name      string `json:"name" example:"Website redesign" default:""` // Name of the project
}

func (editable ProjectEditable) model() models.Project {
	return models.Project{
		ProjectID: editable.ProjectID,
		Name:      editable.Name,
	}
}

type ProjectLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/projects/3b1ea324-d438-4419-882a-2fc91d71772f"` // The project itself
	Entries string `json:"entries" example:"https://example.com/api/v1/entries?project=P-1042"`                     // Entries logged on this project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString("baseURL")

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			ProjectID: model.ProjectID,
			Name:      model.Name,
		},
		Links: ProjectLinks{
			Self:    fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Entries: fmt.Sprintf("%s/v1/entries?project=%s", url, model.ProjectID),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of Projects
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Data  []ProjectResponse `json:"data"`                                                          // List of the created Projects or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // Data for the Project
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectQueryFilter struct {
	ProjectID string `form:"projectId"`                  // By project number
	Name      string `form:"name" filterField:"false"`   // By name
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first Project returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of Projects to return. Defaults to 50.
}

func (f ProjectQueryFilter) model() models.Project {
	return models.Project{
		ProjectID: f.ProjectID,
	}
}
