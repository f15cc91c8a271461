package render

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"docextract-backend/internal/resume"
)

const (
	sidebarWidth = 63.0
	sidebarPad   = 8.0
	mainLeft     = sidebarWidth + 12
)

// renderModern lays out two columns: a dark sidebar with the contact block
// and stacked skill tags, and a main column with the name heading,
// Experience and Education.
func renderModern(data resume.Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(zeroTime)
	pdf.SetAutoPageBreak(true, 14)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageH := pdf.GetPageSize()
	// The sidebar band is painted on every page so overflowing main-column
	// content keeps the two-column look.
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(44, 62, 80)
		pdf.Rect(0, 0, sidebarWidth, pageH, "F")
	})
	pdf.AddPage()

	sidebarW := sidebarWidth - 2*sidebarPad

	// Sidebar content goes only on the first page.
	pdf.SetLeftMargin(sidebarPad)
	pdf.SetRightMargin(210 - sidebarWidth + sidebarPad)
	pdf.SetXY(sidebarPad, 16)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(236, 240, 241)
	pdf.MultiCell(sidebarW, 8, tr(data.Name), "", "C", false)
	pdf.Ln(6)

	modernSidebarTitle(pdf, tr, sidebarW, "Contact")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(189, 195, 199)
	for _, item := range []string{data.Email, data.Phone, data.Address} {
		if item == "" {
			continue
		}
		pdf.SetX(sidebarPad)
		pdf.MultiCell(sidebarW, 5, tr(item), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(4)

	if len(data.Skills) > 0 {
		modernSidebarTitle(pdf, tr, sidebarW, "Skills")
		pdf.SetFont("Helvetica", "", 9)
		for _, skill := range data.Skills {
			pdf.SetX(sidebarPad)
			pdf.SetFillColor(52, 73, 94)
			pdf.SetTextColor(236, 240, 241)
			pdf.CellFormat(sidebarW, 6, tr(skill), "", 1, "L", true, 0, "")
			pdf.Ln(1.5)
		}
	}

	// Main column.
	pdf.SetLeftMargin(mainLeft)
	pdf.SetRightMargin(12)
	pdf.SetXY(mainLeft, 16)
	mainW := 210 - mainLeft - 12

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(mainW, 11, tr(data.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(data.WorkExperience) > 0 {
		modernSectionTitle(pdf, tr, mainW, "Experience")
		for _, job := range data.WorkExperience {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(44, 62, 80)
			pdf.CellFormat(mainW*0.65, 6, tr(job.Company), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(127, 140, 141)
			pdf.CellFormat(mainW*0.35, 6, tr(dateRange(job.StartDate, job.EndDate)), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "I", 11)
			pdf.SetTextColor(52, 73, 94)
			pdf.CellFormat(mainW, 5, tr(job.Title), "", 1, "L", false, 0, "")
			if job.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.SetTextColor(60, 60, 60)
				pdf.MultiCell(mainW, 4.5, tr(job.Description), "", "L", false)
			}
			pdf.Ln(3.5)
		}
	}

	if len(data.Education) > 0 {
		modernSectionTitle(pdf, tr, mainW, "Education")
		for _, edu := range data.Education {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(44, 62, 80)
			pdf.CellFormat(mainW*0.65, 5, tr(edu.Degree), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(127, 140, 141)
			pdf.CellFormat(mainW*0.35, 5, tr(dateRange(edu.StartDate, edu.EndDate)), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(mainW, 5, tr(edu.FieldOfStudy), "", 1, "L", false, 0, "")
			pdf.Ln(1.5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func modernSidebarTitle(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string) {
	pdf.SetX(sidebarPad)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(236, 240, 241)
	pdf.CellFormat(width, 6, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(127, 140, 141)
	pdf.Line(sidebarPad, pdf.GetY(), sidebarPad+width, pdf.GetY())
	pdf.Ln(3)
}

func modernSectionTitle(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(width, 7, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(52, 152, 219)
	pdf.SetLineWidth(0.6)
	pdf.Line(mainLeft, pdf.GetY(), mainLeft+width, pdf.GetY())
	pdf.SetLineWidth(0.2)
	pdf.Ln(4)
}
