package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hourlog/backend/internal/httputil"
	"github.com/hourlog/backend/internal/models"
	"github.com/hourlog/backend/internal/report"
	"github.com/hourlog/backend/internal/types"
)

type MonthResponse struct {
	Data  *report.Report `json:"data"`                                                  // The monthly report
	Error *string        `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type PurgeResponse struct {
	Data  *PurgeResult `json:"data"`                                                                             // Result of the purge
	Error *string      `json:"error" example:"the confirmation for deleting this month's entries was incorrect"` // The error, if any occurred
}

type PurgeResult struct {
	Month  types.Month `json:"month" example:"2024-03"` // The month that was purged
	Purged int64       `json:"purged" example:"23"`     // Number of entries that were deleted
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMonth)
		r.GET("", co.GetMonth)
		r.DELETE("", co.DeleteMonth)
	}

	{
		r.OPTIONS("/export", co.OptionsMonthExport)
		r.POST("/export", co.ExportMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonth(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/export [options]
func (co Controller) OptionsMonthExport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// parseMonthQuery binds the month query parameter, which must be set.
func parseMonthQuery(c *gin.Context) (types.Month, error) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		return types.Month{}, err
	}

	if query.Month.IsZero() {
		return types.Month{}, errMonthNotSetInQuery
	}

	return query.Month, nil
}

// buildReport aggregates the month's entries into a report. It is used
// for the JSON representation; the PDF export goes through the export
// workflow instead so that it is serialized with purges.
func (co Controller) buildReport(month types.Month) (report.Report, error) {
	entries, err := models.EntriesInMonth(co.DB, month)
	if err != nil {
		return report.Report{}, err
	}

	employeeName, err := models.GetSetting(co.DB, models.SettingEmployeeName)
	if err != nil {
		return report.Report{}, err
	}

	employeeNumber, err := models.GetSetting(co.DB, models.SettingEmployeeNumber)
	if err != nil {
		return report.Report{}, err
	}

	buckets, total := report.Aggregate(entries)

	return report.Build(buckets, total, report.Metadata{
		EmployeeName:   employeeName,
		EmployeeNumber: employeeNumber,
		MonthLabel:     month.String(),
		PrintDate:      types.DateOf(time.Now()).String(),
	}), nil
}

// @Summary		Get month
// @Description	Returns the report for a month: per-project hours and their share of the monthly total
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func (co Controller) GetMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	rep, err := co.buildReport(month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &rep})
}

// @Summary		Delete month
// @Description	Permanently deletes all entries of a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	PurgeResponse
// @Failure		400		{object}	PurgeResponse
// @Failure		500		{object}	PurgeResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			confirm	query		string	false	"Confirmation to delete the entries. Must have the value 'yes-please-delete-this-month'"
// @Router			/v1/months [delete]
func (co Controller) DeleteMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurgeResponse{
			Error: &s,
		})
		return
	}

	// Anything but the exact phrase means "keep the data".
	if c.Query("confirm") != purgeConfirmation {
		s := errPurgeConfirmation.Error()
		c.JSON(http.StatusBadRequest, PurgeResponse{
			Error: &s,
		})
		return
	}

	purged, err := models.PurgeMonth(co.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurgeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PurgeResponse{Data: &PurgeResult{
		Month:  month,
		Purged: purged,
	}})
}

// @Summary		Export month
// @Description	Renders the report for a month as a PDF document. With purge=true, the month's entries are permanently deleted after the document has been rendered, which requires the confirmation phrase.
// @Tags			Months
// @Produce		application/pdf
// @Success		200		{file}		file
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			purge	query		bool	false	"Delete the month's entries after a successful export"
// @Param			confirm	query		string	false	"Confirmation for the purge. Must have the value 'yes-please-delete-this-month'"
// @Router			/v1/months/export [post]
func (co Controller) ExportMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	purge := c.Query("purge") == "true"
	if purge && c.Query("confirm") != purgeConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errExportConfirmation.Error(),
		})
		return
	}

	artifact, err := co.Exporter.ExportMonth(month, purge)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if artifact.Purged > 0 {
		c.Header("X-Purged-Entries", fmt.Sprint(artifact.Purged))
	}
	c.Data(http.StatusOK, "application/pdf", artifact.Data)
}
