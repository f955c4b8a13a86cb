package itinerary

import (
	"bytes"
	"fmt"
	"testing"

	"enjoypark/models"
)

func TestBuildPDFSinglePage(t *testing.T) {
	it := &Itinerary{
		Name:      "Giornata in famiglia",
		VisitDate: "2026-07-15",
		Items: []models.PlannerItem{
			NewItemFromAttraction(testAttraction()),
			NewItemFromShow(testShow(), "15:00"),
		},
	}

	pdf := BuildPDF(it)
	if pdf.PageCount() != 1 {
		t.Fatalf("expected a single page, got %d", pdf.PageCount())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestBuildPDFFlowsOntoFurtherPages(t *testing.T) {
	it := &Itinerary{Name: "Maratona"}
	for i := 0; i < 30; i++ {
		a := testAttraction()
		a.ID = i + 1
		a.Name = fmt.Sprintf("Attrazione %d", i+1)
		it.Add(NewItemFromAttraction(a))
	}

	pdf := BuildPDF(it)
	if pdf.PageCount() < 2 {
		t.Fatalf("30 activities should not fit one page, got %d", pdf.PageCount())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestBuildPDFEmptyItineraryDefaults(t *testing.T) {
	pdf := BuildPDF(&Itinerary{})
	if pdf.PageCount() != 1 {
		t.Fatalf("empty itinerary: got %d pages", pdf.PageCount())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
}
