package certificate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderOptions carries everything the certificate page prints.
type RenderOptions struct {
	FullName  string
	EventName string
	Language  string // pt-BR / en-US / es-ES, anything else renders pt-BR
	IssueDate time.Time
	City      string
	Country   string
	Hours     int // 0 omits the workload line
	Code      string
}

type pdfStrings struct {
	title      string
	certify    string
	participed string // sentence template, takes the event name
	workload   string // sentence template, takes hours
	dateLayout string
	codeLabel  string
}

// Static three-way language switch; the default case covers pt-BR and any
// unknown value.
func stringsFor(language string) pdfStrings {
	switch language {
	case "en-US":
		return pdfStrings{
			title:      "CERTIFICATE",
			certify:    "We certify that",
			participed: "participated in %s",
			workload:   "with a workload of %d hours",
			dateLayout: "01/02/2006",
			codeLabel:  "Verification code: %s",
		}
	case "es-ES":
		return pdfStrings{
			title:      "CERTIFICADO",
			certify:    "Certificamos que",
			participed: "participó en %s",
			workload:   "con una carga horaria de %d horas",
			dateLayout: "02/01/2006",
			codeLabel:  "Código de verificación: %s",
		}
	default:
		return pdfStrings{
			title:      "CERTIFICADO",
			certify:    "Certificamos que",
			participed: "participou do %s",
			workload:   "com carga horária de %d horas",
			dateLayout: "02/01/2006",
			codeLabel:  "Código de verificação: %s",
		}
	}
}

// RenderPDF draws the single-page landscape A4 certificate and returns the
// document bytes. Same inputs produce the same text content.
func RenderPDF(opts RenderOptions) ([]byte, error) {
	s := stringsFor(opts.Language)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	// frame
	pdf.SetDrawColor(30, 64, 175)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	// title
	pdf.SetFont("Helvetica", "B", 34)
	pdf.SetTextColor(30, 64, 175)
	pdf.SetXY(0, 35)
	pdf.CellFormat(pageW, 14, tr(s.title), "", 0, "C", false, 0, "")

	// certify line
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(0, 65)
	pdf.CellFormat(pageW, 8, tr(s.certify), "", 0, "C", false, 0, "")

	// holder name
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(0, 80)
	pdf.CellFormat(pageW, 14, tr(opts.FullName), "", 0, "C", false, 0, "")

	// participation sentence
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetXY(0, 102)
	pdf.CellFormat(pageW, 8, tr(fmt.Sprintf(s.participed, opts.EventName)), "", 0, "C", false, 0, "")

	y := 112.0
	if opts.Hours > 0 {
		pdf.SetXY(0, y)
		pdf.CellFormat(pageW, 8, tr(fmt.Sprintf(s.workload, opts.Hours)), "", 0, "C", false, 0, "")
		y += 10
	}

	// location and date
	location := opts.IssueDate.Format(s.dateLayout)
	switch {
	case opts.City != "" && opts.Country != "":
		location = fmt.Sprintf("%s - %s, %s", opts.City, opts.Country, location)
	case opts.City != "":
		location = fmt.Sprintf("%s, %s", opts.City, location)
	case opts.Country != "":
		location = fmt.Sprintf("%s, %s", opts.Country, location)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(0, y+8)
	pdf.CellFormat(pageW, 8, tr(location), "", 0, "C", false, 0, "")

	// verification code footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.SetXY(15, pageH-20)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf(s.codeLabel, opts.Code)), "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
