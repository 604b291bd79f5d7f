// Package controllers implements the HTTP handlers for the API.
package controllers

import (
	"github.com/hourlog/backend/internal/workflow"
	"gorm.io/gorm"
)

// Controller holds the database handle and the export workflow for all
// handlers. It is constructed explicitly on startup, handlers never
// reach for global state.
type Controller struct {
	DB       *gorm.DB
	Exporter *workflow.Exporter
}

// NewController returns a Controller for the database handle passed.
func NewController(db *gorm.DB, exporter *workflow.Exporter) Controller {
	return Controller{
		DB:       db,
		Exporter: exporter,
	}
}
