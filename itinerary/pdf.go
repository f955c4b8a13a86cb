package itinerary

import (
	"fmt"
	"time"

	"enjoypark/models"

	"github.com/phpdave11/gofpdf"
)

const (
	pageLeft      = 20.0
	pageIndent    = 25.0
	pageBreakAt   = 270.0 // mm; past this the next line goes on a new page
	summaryBreak  = 250.0
	footerText    = "EnjoyPark - Pagina %d di {nb}"
	pdfDateLayout = "02/01/2006"
)

// BuildPDF renders the itinerary as a portrait A4 document: title, visit
// date, one numbered block per activity, a summary, and a page-number
// footer on every page. Long itineraries flow onto further pages with
// numbering and footers continuing.
func BuildPDF(it *Itinerary) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetY(-15)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf(footerText, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	name := it.Name
	if name == "" {
		name = DefaultName
	}
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(pageLeft, 12)
	pdf.Cell(0, 10, tr(name))

	if it.VisitDate != "" {
		pdf.SetFont("Helvetica", "", 14)
		pdf.SetXY(pageLeft, 25)
		pdf.Cell(0, 8, tr("Data visita: "+formatVisitDate(it.VisitDate)))
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(pageLeft, 40)
	pdf.Cell(0, 8, tr("Attività pianificate:"))

	y := 55.0
	for i, item := range it.Items {
		// a block is at most four lines; break before it overflows
		if y > pageBreakAt {
			pdf.AddPage()
			y = 20
		}
		y = writeItem(pdf, tr, item, i+1, y)
		y += 10 // gap between activities
	}

	if y > summaryBreak {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pageLeft, y)
	pdf.Cell(0, 7, tr("Riepilogo:"))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(pageIndent, y)
	pdf.Cell(0, 6, tr("Tempo totale stimato: "+FormatMinutes(it.TotalDuration())))
	y += 7
	pdf.SetXY(pageIndent, y)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Numero di attività: %d", len(it.Items))))

	return pdf
}

func writeItem(pdf *gofpdf.Fpdf, tr func(string) string, item models.PlannerItem, n int, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pageLeft, y)
	pdf.Cell(0, 7, tr(fmt.Sprintf("%d. %s", n, item.Name)))
	y += 8

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(pageIndent, y)
	pdf.Cell(0, 6, tr(item.Location))
	y += 7
	pdf.SetXY(pageIndent, y)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Durata: %d min", item.Duration.Int())))
	y += 7

	if item.Kind == models.KindAttraction {
		pdf.SetXY(pageIndent, y)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Tempo di attesa stimato: %d min", item.WaitTime.Int())))
		y += 7
	}
	if item.Kind == models.KindShow && item.Time != "" {
		pdf.SetXY(pageIndent, y)
		pdf.Cell(0, 6, tr("Orario: "+item.Time))
		y += 7
	}
	return y
}

func formatVisitDate(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format(pdfDateLayout)
	}
	return date
}
