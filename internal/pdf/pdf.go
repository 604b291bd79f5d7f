// Package pdf renders a monthly report into a printable document.
package pdf

import (
	"bytes"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/hourlog/backend/internal/report"
	"github.com/rs/zerolog/log"
)

// fallbackFamily is a core font that is always available. It is used
// when no locale font asset is configured or the asset cannot be read.
const fallbackFamily = "Helvetica"

// localeFamily is the name the configured font asset is registered under.
const localeFamily = "locale"

// Column widths in mm. A4 is 210mm wide with 10mm margins on both sides.
const (
	colPercentage  = 30.0
	colProjectID   = 40.0
	colProjectName = 120.0
	rowHeight      = 8.0
)

// Renderer produces PDF documents from reports.
type Renderer struct {
	fontPath string
}

// NewRenderer returns a Renderer. fontPath may point to a TTF font
// asset for the target locale and may be empty.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// Render renders the report into a single PDF document.
//
// All text content is laid out right-to-left, which is a hard
// requirement of the target locale. Cells therefore flow from the
// right edge of the page: the first cell of each table row is the
// rightmost one.
func (r *Renderer) Render(rep report.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)

	family := r.loadFont(pdf)

	pdf.AddPage()
	pdf.RTL()

	// Header: employee name and number on the right, print date on the left
	pdf.SetFont(family, "", 10)
	employee := rep.Metadata.EmployeeName
	if rep.Metadata.EmployeeNumber != "" {
		employee += " / " + rep.Metadata.EmployeeNumber
	}
	pdf.CellFormat(95, 6, employee, "", 0, "R", false, 0, "")
	pdf.CellFormat(95, 6, rep.Metadata.PrintDate, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Title
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, rep.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont(family, "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colPercentage, rowHeight, "%", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colProjectID, rowHeight, "Project No.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colProjectName, rowHeight, "Project", "1", 1, "C", true, 0, "")

	for _, row := range rep.Rows {
		// The totals row is rendered "100% / marker / blank", bold and
		// centered, and never takes the highlight fill.
		if row.Total {
			pdf.SetFont(family, "B", 11)
			pdf.CellFormat(colPercentage, rowHeight, row.Percentage.StringFixed(0)+"%", "1", 0, "C", false, 0, "")
			pdf.CellFormat(colProjectID, rowHeight, row.ProjectID, "1", 0, "C", false, 0, "")
			pdf.CellFormat(colProjectName, rowHeight, "", "1", 1, "C", false, 0, "")
			continue
		}

		pdf.SetFont(family, "", 11)
		pdf.SetFillColor(255, 242, 204)
		pdf.CellFormat(colPercentage, rowHeight, row.Percentage.StringFixed(2)+"%", "1", 0, "C", row.Highlight, 0, "")
		pdf.CellFormat(colProjectID, rowHeight, row.ProjectID, "1", 0, "C", row.Highlight, 0, "")
		pdf.CellFormat(colProjectName, rowHeight, row.ProjectName, "1", 1, "R", row.Highlight, 0, "")
	}

	// Signature line placeholder
	pdf.Ln(20)
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(70, 8, "Signature: ____________________", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// loadFont registers the configured font asset with the document and
// returns the font family to use. When the asset is missing or broken
// the document degrades to a built-in typeface instead of failing.
func (r *Renderer) loadFont(pdf *fpdf.Fpdf) string {
	if r.fontPath == "" {
		return fallbackFamily
	}

	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		log.Warn().Str("path", r.fontPath).Err(err).Msg("font asset not readable, falling back to built-in typeface")
		return fallbackFamily
	}

	pdf.AddUTF8FontFromBytes(localeFamily, "", data)
	pdf.AddUTF8FontFromBytes(localeFamily, "B", data)

	// fpdf swallows TTF parse errors and simply does not register the
	// family, so selecting the font is the only reliable check.
	pdf.SetFont(localeFamily, "", 11)
	if pdf.Err() {
		log.Warn().Str("path", r.fontPath).Err(pdf.Error()).Msg("font asset not usable, falling back to built-in typeface")
		pdf.ClearError()
		return fallbackFamily
	}

	return localeFamily
}
