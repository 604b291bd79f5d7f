package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hourlog/backend/internal/httputil"
	"github.com/hourlog/backend/internal/models"
)

// SettingEditable represents all user configurable parameters
type SettingEditable struct {
	Value string `json:"value" example:"Jane Doe" default:""` // Value of the setting
}

type SettingLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings/employee_name"` // The setting itself
}

type Setting struct {
	Key   string       `json:"key" example:"employee_name"` // Key of the setting
	Value string       `json:"value" example:"Jane Doe"`    // Value of the setting, empty string when unset
	Links SettingLinks `json:"links"`
}

func newSetting(c *gin.Context, key, value string) Setting {
	return Setting{
		Key:   key,
		Value: value,
		Links: SettingLinks{
			Self: fmt.Sprintf("%s/v1/settings/%s", c.GetString("baseURL"), key),
		},
	}
}

type SettingListResponse struct {
	Data  []Setting `json:"data"`                                             // List of Settings
	Error *string   `json:"error" example:"this settings key does not exist"` // The error, if any occurred
}

type SettingResponse struct {
	Data  *Setting `json:"data"`                                             // Data for the Setting
	Error *string  `json:"error" example:"this settings key does not exist"` // The error, if any occurred
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsSettingList)
		r.GET("", co.GetSettings)
	}

	// Setting with key
	{
		r.OPTIONS("/:key", co.OptionsSettingDetail)
		r.GET("/:key", co.GetSetting)
		r.PATCH("/:key", co.UpdateSetting)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func (co Controller) OptionsSettingList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [options]
func (co Controller) OptionsSettingDetail(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !models.IsSettingKey(uri.Key) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: models.ErrSettingKeyUnknown.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns all settings. Settings that have never been written are returned with an empty value.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingListResponse
// @Failure		500	{object}	SettingListResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	data := make([]Setting, 0, len(models.SettingKeys))
	for _, key := range models.SettingKeys {
		value, err := models.GetSetting(co.DB, key)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SettingListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newSetting(c, key, value))
	}

	c.JSON(http.StatusOK, SettingListResponse{Data: data})
}

// @Summary		Get setting
// @Description	Returns a specific setting. A setting that has never been written is returned with an empty value.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingResponse
// @Failure		400	{object}	SettingResponse
// @Failure		500	{object}	SettingResponse
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [get]
func (co Controller) GetSetting(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	if !models.IsSettingKey(uri.Key) {
		s := models.ErrSettingKeyUnknown.Error()
		c.JSON(http.StatusBadRequest, SettingResponse{
			Error: &s,
		})
		return
	}

	value, err := models.GetSetting(co.DB, uri.Key)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	data := newSetting(c, uri.Key, value)
	c.JSON(http.StatusOK, SettingResponse{Data: &data})
}

// @Summary		Update setting
// @Description	Sets the value of a setting. The setting is created when it does not exist yet.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingResponse
// @Failure		400		{object}	SettingResponse
// @Failure		500		{object}	SettingResponse
// @Param			key		path		string			true	"Key of the setting"
// @Param			setting	body		SettingEditable	true	"Setting"
// @Router			/v1/settings/{key} [patch]
func (co Controller) UpdateSetting(c *gin.Context) {
	var uri URIKey
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	var data SettingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	err = models.SetSetting(co.DB, uri.Key, data.Value)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingResponse{
			Error: &s,
		})
		return
	}

	resource := newSetting(c, uri.Key, data.Value)
	c.JSON(http.StatusOK, SettingResponse{Data: &resource})
}
