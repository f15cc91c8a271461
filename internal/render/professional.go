package render

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"docextract-backend/internal/resume"
)

// renderProfessional lays out a single column: header block with name and
// contact row, then Experience, Education and Skills in that fixed order.
func renderProfessional(data resume.Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Uncompressed streams keep the visible content byte-stable for
	// identical input.
	pdf.SetCompression(false)
	pdf.SetCreationDate(zeroTime)
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 14)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	// Header block.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentW, 11, tr(strings.ToUpper(data.Name)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(68, 68, 68)
	third := contentW / 3
	pdf.CellFormat(third, 5, tr(data.Email), "", 0, "L", false, 0, "")
	pdf.CellFormat(third, 5, tr(data.Phone), "", 0, "C", false, 0, "")
	pdf.CellFormat(third, 5, tr(data.Address), "", 1, "R", false, 0, "")
	pdf.Ln(2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(left, pdf.GetY(), pageW-right, pdf.GetY())
	pdf.Ln(5)

	if len(data.WorkExperience) > 0 {
		professionalSectionTitle(pdf, tr, contentW, "Professional Experience")
		for _, job := range data.WorkExperience {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(contentW*0.65, 6, tr(job.Company), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(102, 102, 102)
			pdf.CellFormat(contentW*0.35, 6, tr(dateRange(job.StartDate, job.EndDate)), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "I", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(contentW, 5, tr(job.Title), "", 1, "L", false, 0, "")
			if job.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(contentW, 4.5, tr(job.Description), "", "J", false)
			}
			pdf.Ln(3)
		}
	}

	if len(data.Education) > 0 {
		professionalSectionTitle(pdf, tr, contentW, "Education")
		for _, edu := range data.Education {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(contentW*0.65, 5, tr(edu.Degree), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(102, 102, 102)
			pdf.CellFormat(contentW*0.35, 5, tr(dateRange(edu.StartDate, edu.EndDate)), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(contentW, 5, tr(edu.FieldOfStudy), "", 1, "L", false, 0, "")
			pdf.Ln(1.5)
		}
	}

	if len(data.Skills) > 0 {
		professionalSectionTitle(pdf, tr, contentW, "Skills")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(238, 238, 238)
		x := left
		for _, skill := range data.Skills {
			w := pdf.GetStringWidth(tr(skill)) + 4
			if x+w > pageW-right {
				pdf.Ln(7)
				x = left
			}
			pdf.SetX(x)
			pdf.CellFormat(w, 6, tr(skill), "", 0, "C", true, 0, "")
			x += w + 2
		}
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func professionalSectionTitle(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(width, 7, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(204, 204, 204)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+width, pdf.GetY())
	pdf.Ln(3)
}
