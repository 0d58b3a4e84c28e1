package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"centring-backend/internal/models"
	"centring-backend/internal/timeutil"
)

const (
	CSVFileName = "table_data.csv"
	PDFFileName = "statement.pdf"
)

var csvHeader = []string{"Date", "Name", "Phone Number", "Products", "Amount", "Paid", "Returned", "Notes"}

// ExportService serializes filtered record rows for download.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// CSV renders the given rows with the fixed header and DD/MM/YYYY dates.
// Values are joined with bare commas and are not quote-escaped, so a
// comma inside a free-text field shifts that row's columns. Known
// limitation; consumers open the file in a spreadsheet and fix by hand.
func (s *ExportService) CSV(records []*models.TransactionRecord) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	buf.WriteByte('\n')

	for _, r := range records {
		row := []string{
			timeutil.FormatDDMMYYYY(r.Date),
			r.Name,
			r.PhoneNo,
			r.Product,
			formatAmount(r.PaidAmount),
			r.PaidStatus,
			yesNo(r.Returned),
			r.Notes,
		}
		buf.WriteString(strings.Join(row, ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// PDF renders the given rows as a landscape A4 statement with a totals
// line. Core PDF fonts have no rupee glyph, so amounts use "Rs.".
func (s *ExportService) PDF(records []*models.TransactionRecord, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{25, 45, 30, 45, 25, 20, 20, 57}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range csvHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	var total float64
	for _, r := range records {
		cells := []string{
			timeutil.FormatDDMMYYYY(r.Date),
			r.Name,
			r.PhoneNo,
			r.Product,
			formatAmount(r.PaidAmount),
			r.PaidStatus,
			yesNo(r.Returned),
			r.Notes,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		total += r.PaidAmount
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Paid: Rs. %s (%d entries)", formatAmount(total), len(records)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
