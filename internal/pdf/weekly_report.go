package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/isaqueks/tasks/internal/models"
)

var dayTitles = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeeklyReport renders the weekly board as an A4 PDF: one section per
// company, a row per weekday plus the backlog.
func WeeklyReport(board *models.WeeklyBoard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Weekly tasks", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Weekly tasks", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("%s  -  %s",
		board.StartDate.Format("02.01.2006"),
		board.EndDate.Format("02.01.2006"),
	)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	hr(pdf)
	pdf.Ln(3)

	if len(board.Data) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 7, "No companies registered.", "", 1, "L", false, 0, "")
	}

	for _, entry := range board.Data {
		sectionTitle(pdf, entry.Company.Name)
		for day := 0; day < 7; day++ {
			dayLine(pdf, dayTitles[day], entry.Tasks.At(day))
		}
		dayLine(pdf, "Backlog", entry.Tasks.Backlog)
		pdf.Ln(2)
		hr(pdf)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly report: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func dayLine(pdf *gofpdf.Fpdf, day string, tasks []models.Task) {
	if len(tasks) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, day, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, t := range tasks {
		if i > 0 {
			pdf.CellFormat(30, 6, "", "", 0, "L", false, 0, "")
		}
		line := t.Name
		if t.Completed {
			line += " (done)"
		}
		line += " [" + string(t.Priority) + "]"
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
}

func hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
