package documents

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Company letterhead constants shared by every document.
const (
	companyName  = "Prime Finish Painting"
	companyPhone = "(416) 123-4567"
	companyAddr1 = "123 Maple Avenue"
	companyAddr2 = "Toronto, ON M4B 1B4"
	companyEmail = "info@primefinish.ca"
	gstNumber    = "12345 6789 RT0001"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// PDFRenderer draws records into fixed-layout PDF documents. It consumes only
// finalized record data; nothing here feeds back into the rules engine.
//
// The layouts follow the app's paper documents: letterhead title, company and
// customer boxes, an Items/Description grid (plus a Total column on detailed
// documents) and a Subtotal / GST-HST / Total box.

type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) EstimatePDF(record entities.Record) ([]byte, string, error) {
	return renderSummary(record, "Estimate", "Estimate #")
}

func (r *PDFRenderer) InvoicePDF(record entities.Record) ([]byte, string, error) {
	return renderSummary(record, "Invoice", "Invoice #")
}

func (r *PDFRenderer) DetailedEstimatePDF(record entities.Record) ([]byte, string, error) {
	return renderDetailed(record, "Detailed Estimate", "Detailed_Estimate")
}

func (r *PDFRenderer) DetailedInvoicePDF(record entities.Record) ([]byte, string, error) {
	return renderDetailed(record, "Detailed Invoice", "Detailed_Invoice")
}

// ExpenseReportPDF renders the flat expense report: one line per expense.
func (r *PDFRenderer) ExpenseReportPDF(expenses []entities.Expense) ([]byte, string, error) {
	pdf := newDoc()
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(10, 10, "Expense Report")

	y := 20.0
	for _, e := range expenses {
		line := fmt.Sprintf("Job #%s | %s | $%.2f", e.JobNumber, e.Description, e.Amount.Float())
		pdf.Text(10, y, line)
		y += 10
	}

	data, err := output(pdf)
	return data, "expenses_report.pdf", err
}

// PayoutReportPDF renders the payout report. The filename carries the name
// filter when one was applied.
func (r *PDFRenderer) PayoutReportPDF(payments []entities.StaffPayment, filterName string) ([]byte, string, error) {
	pdf := newDoc()
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(10, 10, "Payouts Report")

	y := 20.0
	for _, p := range payments {
		gst := "No GST"
		if p.GST {
			gst = "GST"
		}
		line := fmt.Sprintf("%s | %s | %s | $%.2f | %s", p.Date, p.Name, p.Description, p.Total.Float(), gst)
		pdf.Text(10, y, line)
		y += 10
	}

	filename := "staff_payouts.pdf"
	if strings.TrimSpace(filterName) != "" {
		filename = strings.TrimSpace(filterName) + "_payout.pdf"
	}
	data, err := output(pdf)
	return data, filename, err
}

// renderSummary draws the one-page summary document: no per-item rows, just
// the record description in the grid.
func renderSummary(record entities.Record, title, numberLabel string) ([]byte, string, error) {
	pdf := newDoc()
	drawLetterhead(pdf, record, title, numberLabel)

	// Items/Description grid, fixed frame.
	const (
		gridX = 15.0
		gridY = 110.0
		gridW = 180.0
		gridH = 120.0
	)
	pdf.Rect(gridX, gridY, gridW, gridH, "D")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(18, 117, "Items")
	pdf.Text(43, 117, "Description")
	pdf.Line(gridX, 119, gridX+gridW, 119)
	pdf.Line(40, gridY, 40, gridY+gridH)

	writeWrapped(pdf, record.EffectiveDescription(), 43, 127, 110, gridY+gridH)

	drawTotals(pdf, record, gridY+gridH)

	data, err := output(pdf)
	return data, title + "_" + sanitizeName(record.CustomerName) + ".pdf", err
}

// renderDetailed draws the per-line-item document: every room and extra gets
// a grid row with its type, name and amount, followed by the description.
func renderDetailed(record entities.Record, title, filePrefix string) ([]byte, string, error) {
	pdf := newDoc()
	drawLetterhead(pdf, record, title, "No. #")

	const (
		gridX = 15.0
		gridY = 110.0
		gridW = 180.0
		gridH = 120.0
	)
	pdf.Rect(gridX, gridY, gridW, gridH, "D")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(18, 117, "Items")
	pdf.Text(43, 117, "Description")
	pdf.Text(170, 117, "Total")
	pdf.Line(gridX, 119, gridX+gridW, 119)
	pdf.Line(40, gridY, 40, gridY+gridH)
	pdf.Line(168, gridY, 168, gridY+gridH)

	y := 127.0
	bottom := gridY + gridH
	for _, room := range record.Rooms {
		if y+5 > bottom {
			break
		}
		kind := "Room"
		total := formatCurrency(room.Cost.Float())
		if room.RoomName == entities.SquareFootageLabel {
			kind = "House"
			total = strconv.FormatFloat(room.SquareFootage.Float(), 'f', -1, 64)
		}
		name := room.RoomName
		if room.CustomRoomName != "" {
			name = room.CustomRoomName
		}
		if name == "" {
			name = "N/A"
		}
		pdf.Text(18, y, kind)
		pdf.Text(43, y, name)
		pdf.Text(170, y, total)
		y += 5
	}
	for _, extra := range record.Extras {
		if y+5 > bottom {
			break
		}
		name := extra.Type
		if extra.CustomType != "" {
			name = extra.CustomType
		}
		if name == "" {
			name = "N/A"
		}
		pdf.Text(18, y, "Extra/Paint")
		pdf.Text(43, y, name)
		pdf.Text(170, y, formatCurrency(extra.Cost.Float()))
		y += 5
	}

	writeWrapped(pdf, record.EffectiveDescription(), 43, y+5, 110, bottom)

	drawTotals(pdf, record, bottom)

	data, err := output(pdf)
	return data, filePrefix + "_" + sanitizeName(record.CustomerName) + ".pdf", err
}

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	return pdf
}

// drawLetterhead draws the title, the date/number box, the company-info box
// and the customer box shared by the record documents.
func drawLetterhead(pdf *gofpdf.Fpdf, record entities.Record, title, numberLabel string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(155, 20, title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(157, 27, "Date: "+orNA(record.Date))
	pdf.Text(157, 35, numberLabel+" "+orNA(record.EstimateNumber))
	pdf.Line(155, 30, 195, 30)
	pdf.Rect(155, 22, 40, 15, "D")

	pdf.SetFont("Helvetica", "", 10)
	companyInfo := []string{companyName, companyPhone, companyAddr1, companyAddr2, companyEmail}
	for i, line := range companyInfo {
		pdf.Text(47, 75+float64(i)*5, line)
	}
	pdf.Rect(45, 70, 50, float64(len(companyInfo))*5+3, "D")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(120, 75, "Name / Address:")
	pdf.Line(118, 78, 195, 78)
	pdf.Text(120, 83, orNA(record.CustomerName))
	y := writeWrapped(pdf, orNA(record.Address), 120, 88, 70, 110)
	pdf.Text(120, y, orNA(record.PhoneNumber))
	pdf.Rect(118, 70, 77, y-70+5, "D")
}

// drawTotals draws the Subtotal / GST-HST / Total box below the grid and the
// GST number line.
func drawTotals(pdf *gofpdf.Fpdf, record entities.Record, gridBottom float64) {
	const (
		boxX = 150.0
		boxW = 45.0
		boxH = 30.0
		line = 10.0
	)
	boxY := gridBottom + 5

	pdf.Rect(boxX, boxY, boxW, boxH, "D")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(boxX+2, boxY+line-2, "Subtotal:")
	pdf.Text(boxX+2, boxY+line*2-2, "GST/HST:")
	pdf.Text(boxX+2, boxY+line*3-2, "Total:")
	pdf.Line(boxX, boxY+line, boxX+boxW, boxY+line)
	pdf.Line(boxX, boxY+line*2, boxX+boxW, boxY+line*2)
	pdf.Line(boxX, boxY+line*3, boxX+boxW, boxY+line*3)

	pdf.SetFont("Helvetica", "", 12)
	textRight(pdf, boxX+boxW-2, boxY+line-2, formatCurrency(record.Subtotal.Float()))
	textRight(pdf, boxX+boxW-2, boxY+line*2-2, formatCurrency(record.GstHst.Float()))
	textRight(pdf, boxX+boxW-2, boxY+line*3-2, formatCurrency(record.Total.Float()))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(15, gridBottom+15, "GST/HST NO.:")
	pdf.Text(50, gridBottom+15, gstNumber)
}

// writeWrapped writes text wrapped to a column width, stopping at the bottom
// bound. Returns the y position after the last written line.
func writeWrapped(pdf *gofpdf.Fpdf, text string, x, y, width, bottom float64) float64 {
	if strings.TrimSpace(text) == "" {
		return y
	}
	lines := pdf.SplitLines([]byte(text), width)
	for _, line := range lines {
		if y+5 > bottom {
			break
		}
		pdf.Text(x, y, string(line))
		y += 5
	}
	return y
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, text string) {
	pdf.Text(x-pdf.GetStringWidth(text), y, text)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// formatCurrency renders "$1,234.56".
func formatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// sanitizeName mirrors the download-name rule: non-alphanumerics become
// underscores, lowercased.
func sanitizeName(name string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(name, "_"))
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
