package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hourlog/backend/internal/httputil"
	"github.com/hourlog/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterEntryRoutes registers the routes for entries with
// the RouterGroup that is passed.
func (co Controller) RegisterEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsEntryList)
		r.GET("", co.GetEntries)
		r.POST("", co.CreateEntries)
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", co.OptionsEntryDetail)
		r.GET("/:id", co.GetEntry)
		r.PATCH("/:id", co.UpdateEntry)
		r.DELETE("/:id", co.DeleteEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func (co Controller) OptionsEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [options]
func (co Controller) OptionsEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.First(&models.Entry{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create entries
// @Description	Creates new entries. When projectName is empty, the name of the referenced project is copied into the entry.
// @Tags			Entries
// @Produce		json
// @Success		201		{object}	EntryCreateResponse
// @Failure		400		{object}	EntryCreateResponse
// @Failure		500		{object}	EntryCreateResponse
// @Param			entries	body		[]EntryEditable	true	"Entries"
// @Router			/v1/entries [post]
func (co Controller) CreateEntries(c *gin.Context) {
	var editables []EntryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EntryCreateResponse{}

	for _, editable := range editables {
		entry := editable.model()

		// Entries store a snapshot of the project name. When none is
		// given, take it from the project with the matching number.
		if entry.ProjectName == "" && entry.ProjectID != "" {
			var project models.Project
			err = co.DB.First(&project, "project_id = ?", entry.ProjectID).Error
			if err == nil {
				entry.ProjectName = project.Name
			}
		}

		err = co.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEntry(c, entry)
		r.Data = append(r.Data, EntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get entries
// @Description	Returns a list of entries
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Router			/v1/entries [get]
// @Param			month		query	string	false	"Filter by month the date falls in, format YYYY-MM"
// @Param			project		query	string	false	"Filter by project number"
// @Param			fromDate	query	string	false	"Entries on or after this date, format YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Entries on or before this date, format YYYY-MM-DD"
// @Param			offset		query	uint	false	"The offset of the first Entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Entries to return. Defaults to 50."
func (co Controller) GetEntries(c *gin.Context) {
	var filter EntryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := co.DB.
		Order("date ASC, created_at ASC").
		Where(&filterModel, queryFields...)

	// Dates are stored as "yyyy-MM-dd" TEXT, string comparison matches
	// chronological order.
	if slices.Contains(setFields, "Month") {
		q = q.Where("date >= ?", filter.Month.Start().String()).
			Where("date < ?", filter.Month.End().String())
	}

	if slices.Contains(setFields, "FromDate") {
		q = q.Where("date >= ?", filter.FromDate.String())
	}

	if slices.Contains(setFields, "UntilDate") {
		q = q.Where("date <= ?", filter.UntilDate.String())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Entries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.Entry
	err := q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	c.JSON(http.StatusOK, EntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get entry
// @Description	Returns a specific entry
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryResponse
// @Failure		400	{object}	EntryResponse
// @Failure		404	{object}	EntryResponse
// @Failure		500	{object}	EntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [get]
func (co Controller) GetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.Entry
	err = co.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Update entry
// @Description	Update an existing entry. Only values to be updated need to be specified.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries/{id} [patch]
func (co Controller) UpdateEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.Entry
	err = co.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var data EntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	err = co.DB.Model(&entry).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	r := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &r})
}

// @Summary		Delete entry
// @Description	Deletes an entry
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [delete]
func (co Controller) DeleteEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.Entry
	err = co.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
