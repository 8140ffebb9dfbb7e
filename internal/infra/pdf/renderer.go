package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	domain "github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

const (
	marginLeft   = 20.0
	marginTop    = 20.0
	marginRight  = 20.0
	marginBottom = 15.0
	pageWidth    = 210.0
	contentWidth = pageWidth - marginLeft - marginRight
	labelWidth   = 110.0
	rowHeight    = 7.0
)

// Renderer renders the one-page A4 summary
type Renderer struct {
	// Currency is prefixed to money values, "$" when empty.
	Currency     string
	Uncompressed bool
}

func NewRenderer(currency string) *Renderer {
	return &Renderer{Currency: currency}
}

type page struct {
	pdf      *fpdf.Fpdf
	currency string
	tr       func(string) string
}

func newPage(currency string) *page {
	doc := fpdf.New("P", "mm", "A4", "")
	// cp1252 translator; the core fonts cannot show raw UTF-8
	return &page{pdf: doc, currency: currency, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

// Render implements report.Renderer
func (r *Renderer) Render(s domain.Summary) ([]byte, error) {
	doc := r.build(s)
	if err := doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) build(s domain.Summary) *fpdf.Fpdf {
	currency := r.Currency
	if currency == "" {
		currency = "$"
	}
	p := newPage(currency)
	p.pdf.SetCompression(!r.Uncompressed)
	p.pdf.SetMargins(marginLeft, marginTop, marginRight)
	p.pdf.SetAutoPageBreak(false, marginBottom)
	p.pdf.SetTitle("Invoicing ROI Summary", true)
	p.pdf.SetAuthor("ROI Simulator", true)
	p.pdf.SetCreationDate(s.GeneratedAt)

	p.pdf.AddPage()
	p.header(s)
	if s.Inputs != nil {
		p.inputs(*s.Inputs)
	}
	p.results(s.Results)
	if s.Narrative != "" {
		p.narrative(s.Narrative)
	}
	p.footer()
	return p.pdf
}

func (p *page) header(s domain.Summary) {
	p.pdf.SetFont("Arial", "B", 22)
	p.pdf.SetTextColor(0, 51, 102)
	p.pdf.CellFormat(contentWidth, 12, "Invoicing ROI Summary", "", 1, "L", false, 0, "")

	p.pdf.SetFont("Arial", "", 11)
	p.pdf.SetTextColor(80, 80, 80)
	if s.ScenarioName != "" {
		p.pdf.CellFormat(contentWidth, 6, p.latin1("Scenario: "+s.ScenarioName), "", 1, "L", false, 0, "")
	}
	p.pdf.CellFormat(contentWidth, 6, p.latin1("Prepared for: "+s.Recipient), "", 1, "L", false, 0, "")
	p.pdf.CellFormat(contentWidth, 6, "Generated: "+s.GeneratedAt.Format("2 January 2006"), "", 1, "L", false, 0, "")
	p.pdf.Ln(6)
}

func (p *page) section(title string) {
	p.pdf.SetFillColor(245, 247, 250)
	p.pdf.SetDrawColor(200, 200, 200)
	p.pdf.SetFont("Arial", "B", 12)
	p.pdf.SetTextColor(0, 51, 102)
	p.pdf.CellFormat(contentWidth, 8, title, "1", 1, "L", true, 0, "")
	p.pdf.SetFont("Arial", "", 11)
	p.pdf.SetTextColor(50, 50, 50)
}

func (p *page) row(label, value string) {
	p.pdf.CellFormat(labelWidth, rowHeight, label, "LB", 0, "L", false, 0, "")
	p.pdf.CellFormat(contentWidth-labelWidth, rowHeight, value, "RB", 1, "R", false, 0, "")
}

func (p *page) inputs(in roi.Inputs) {
	p.section("Current Process")
	p.row("Monthly invoice volume", number(in.MonthlyInvoiceVolume, 0))
	p.row("AP staff", number(in.NumAPStaff, 1))
	p.row("Average hours per invoice", number(in.AvgHoursPerInvoice, 2))
	p.row("Hourly wage", p.money(in.HourlyWage))
	p.row("Manual error rate", number(in.ErrorRateManual, 2)+"%")
	p.row("Cost per error", p.money(in.ErrorCost))
	p.row("Time horizon", fmt.Sprintf("%d months", in.TimeHorizonMonths))
	p.row("One-time implementation cost", p.money(in.OneTimeImplementationCost))
	p.pdf.Ln(6)
}

func (p *page) results(res roi.Results) {
	p.section("Projected Results")
	p.row("Monthly savings", p.money(res.MonthlySavings))
	p.row("Cumulative savings", p.money(res.CumulativeSavings))
	p.row("Net savings", p.money(res.NetSavings))
	payback := "Not reached"
	if res.PaybackMonths != nil {
		payback = number(*res.PaybackMonths, 1) + " months"
	}
	p.row("Payback period", payback)
	p.row("Return on investment", number(res.ROIPercentage, 1)+"%")
	p.pdf.Ln(6)
}

func (p *page) narrative(text string) {
	p.section("Commentary")
	p.pdf.Ln(2)
	p.pdf.MultiCell(contentWidth, 5.5, p.latin1(text), "", "L", false)
	p.pdf.Ln(4)
}

func (p *page) footer() {
	p.pdf.SetY(-marginBottom - 12)
	p.pdf.SetFont("Arial", "I", 8)
	p.pdf.SetTextColor(120, 120, 120)
	p.pdf.MultiCell(contentWidth, 4,
		"Projection assumes an automated cost of "+p.money(roi.AutomatedCostPerInvoice)+
			" per invoice and a residual error rate of "+number(roi.AutomatedErrorRate, 1)+
			"%. Figures are estimates for planning purposes only.",
		"", "C", false)
}

func (p *page) money(v float64) string {
	places := 0
	if v != float64(int64(v)) {
		places = 2
	}
	s := number(v, places)
	if strings.HasPrefix(s, "-") {
		return p.latin1("-" + p.currency + s[1:])
	}
	return p.latin1(p.currency + s)
}

// number formats v with thousands separators
func number(v float64, places int) string {
	s := strconv.FormatFloat(v, 'f', places, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + frac
}

// latin1 maps UTF-8 text to the cp1252 encoding the core fonts expect
func (p *page) latin1(s string) string {
	return p.tr(s)
}
