// Package workflow orchestrates the export of a monthly report and the
// optional purge of the month's entries.
package workflow

import (
	"errors"
	"sync"
	"time"

	"github.com/hourlog/backend/internal/models"
	"github.com/hourlog/backend/internal/report"
	"github.com/hourlog/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrExportInProgress = errors.New("another export is currently running, try again when it has finished")
	ErrNothingToExport  = errors.New("there are no entries in this month, nothing to export")
)

// State describes what the exporter is currently doing.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateRendering State = "rendering"
	StatePurging   State = "purging"
)

// Renderer turns a report into a printable document.
type Renderer interface {
	Render(report.Report) ([]byte, error)
}

// Artifact is the result of a successful export.
type Artifact struct {
	Filename string // Derived from the month, "Report_yyyy-MM.pdf"
	Data     []byte
	Purged   int64 // Number of entries deleted after the export, 0 when keeping them
}

// Exporter runs the export workflow. Only one export may run at a
// time: a second invocation while the exporter is not idle is
// rejected, never interleaved. This prevents double exports and double
// deletes of the same month.
type Exporter struct {
	db       *gorm.DB
	renderer Renderer

	mu    sync.Mutex
	state State
}

// NewExporter returns an Exporter using the database handle and
// renderer that are passed.
func NewExporter(db *gorm.DB, renderer Renderer) *Exporter {
	return &Exporter{
		db:       db,
		renderer: renderer,
		state:    StateIdle,
	}
}

// State returns the current state of the exporter.
func (e *Exporter) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// begin transitions the exporter out of the idle state, rejecting
// re-entry while a run is in flight.
func (e *Exporter) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle {
		return ErrExportInProgress
	}

	e.state = StateLoading
	return nil
}

func (e *Exporter) setState(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s
}

// ExportMonth renders the report for a month and, if purge is set,
// deletes the month's entries afterwards.
//
// The purge only happens after the document has been rendered
// successfully. It runs to completion before ExportMonth returns.
// A month without entries is not exported.
func (e *Exporter) ExportMonth(month types.Month, purge bool) (Artifact, error) {
	if err := e.begin(); err != nil {
		return Artifact{}, err
	}
	defer e.setState(StateIdle)

	entries, err := models.EntriesInMonth(e.db, month)
	if err != nil {
		return Artifact{}, err
	}

	if len(entries) == 0 {
		return Artifact{}, ErrNothingToExport
	}

	employeeName, err := models.GetSetting(e.db, models.SettingEmployeeName)
	if err != nil {
		return Artifact{}, err
	}

	employeeNumber, err := models.GetSetting(e.db, models.SettingEmployeeNumber)
	if err != nil {
		return Artifact{}, err
	}

	buckets, total := report.Aggregate(entries)
	rep := report.Build(buckets, total, report.Metadata{
		EmployeeName:   employeeName,
		EmployeeNumber: employeeNumber,
		MonthLabel:     month.String(),
		PrintDate:      types.DateOf(time.Now()).String(),
	})

	e.setState(StateRendering)

	data, err := e.renderer.Render(rep)
	if err != nil {
		return Artifact{}, err
	}

	artifact := Artifact{
		Filename: report.Filename(month),
		Data:     data,
	}

	if !purge {
		return artifact, nil
	}

	e.setState(StatePurging)

	purged, err := models.PurgeMonth(e.db, month)
	if err != nil {
		return Artifact{}, err
	}
	artifact.Purged = purged

	// Refresh the aggregate for the month. Against the now-empty data
	// this must yield an empty result without an error.
	remaining, err := models.EntriesInMonth(e.db, month)
	if err != nil {
		return Artifact{}, err
	}
	_, remainingTotal := report.Aggregate(remaining)

	log.Info().
		Str("month", month.String()).
		Int64("purged", purged).
		Str("remaining-hours", remainingTotal.String()).
		Msg("purged entries after export")

	return artifact, nil
}
