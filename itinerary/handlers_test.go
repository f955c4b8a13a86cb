package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enjoypark/parkdata"

	"github.com/julienschmidt/httprouter"
)

func testRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/attractions":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "name": "Tornado", "location": "Zona Nord", "category": "adrenalina", "duration": 5, "waitTime": 45},
			})
		case "/shows":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 3, "name": "Magia sul Ghiaccio", "location": "Teatro Centrale", "duration": 30, "times": []string{"15:00", "18:00"}},
			})
		default:
			w.Write([]byte("[]"))
		}
	}))
	t.Cleanup(backend.Close)

	data := parkdata.NewStore(backend.URL, nil)
	if err := data.FetchAttractions(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := data.FetchShows(context.Background()); err != nil {
		t.Fatal(err)
	}

	h := NewHandler(NewStore(), data)
	router := httprouter.New()
	router.POST("/api/planner", h.CreatePlanner)
	router.GET("/api/planner/:id", h.GetPlanner)
	router.PUT("/api/planner/:id", h.UpdatePlanner)
	router.DELETE("/api/planner/:id", h.DeletePlanner)
	router.POST("/api/planner/:id/items", h.AddItem)
	router.DELETE("/api/planner/:id/items/:itemid", h.RemoveItem)
	router.PUT("/api/planner/:id/items/:itemid/move", h.MoveItemStep)
	router.PUT("/api/planner/:id/reorder", h.Reorder)
	router.GET("/api/planner/:id/export", h.ExportPDF)
	return router
}

func call(t *testing.T, router *httprouter.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlannerFlow(t *testing.T) {
	router := testRouter(t)

	rec := call(t, router, http.MethodPost, "/api/planner", map[string]any{"visitDate": "2026-07-15"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d (%s)", rec.Code, rec.Body.String())
	}
	var it Itinerary
	if err := json.Unmarshal(rec.Body.Bytes(), &it); err != nil {
		t.Fatal(err)
	}
	if it.Name != DefaultName {
		t.Fatalf("default name: got %q", it.Name)
	}
	base := "/api/planner/" + it.ID

	// add the attraction twice and the show once
	for i := 0; i < 2; i++ {
		rec = call(t, router, http.MethodPost, base+"/items", map[string]any{"type": "attraction", "id": 1})
		if rec.Code != http.StatusCreated {
			t.Fatalf("add attraction: got %d (%s)", rec.Code, rec.Body.String())
		}
	}
	rec = call(t, router, http.MethodPost, base+"/items", map[string]any{"type": "show", "id": 3, "time": "15:00"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add show: got %d", rec.Code)
	}

	// unknown sources and kinds are rejected
	rec = call(t, router, http.MethodPost, base+"/items", map[string]any{"type": "attraction", "id": 99})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown attraction: got %d", rec.Code)
	}
	rec = call(t, router, http.MethodPost, base+"/items", map[string]any{"type": "ristorante", "id": 1})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad kind: got %d", rec.Code)
	}

	// duplicates each count towards the total: 2*(5+45) + 30
	rec = call(t, router, http.MethodGet, base, nil)
	var view struct {
		Itinerary     Itinerary `json:"itinerary"`
		TotalDuration int       `json:"totalDuration"`
		Formatted     string    `json:"formatted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if len(view.Itinerary.Items) != 3 {
		t.Fatalf("items: got %d", len(view.Itinerary.Items))
	}
	if view.TotalDuration != 130 {
		t.Fatalf("total: got %d, want 130", view.TotalDuration)
	}
	if view.Formatted != "2h 10min" {
		t.Fatalf("formatted: got %q", view.Formatted)
	}

	// removing one duplicate leaves the other in place
	victim := view.Itinerary.Items[1].PlannerID
	rec = call(t, router, http.MethodDelete, base+"/items/"+victim, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &it); err != nil {
		t.Fatal(err)
	}
	if len(it.Items) != 2 {
		t.Fatalf("items after remove: got %d", len(it.Items))
	}
	rec = call(t, router, http.MethodDelete, base+"/items/"+victim, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("remove again: got %d", rec.Code)
	}

	// reorder and step moves
	rec = call(t, router, http.MethodPut, base+"/reorder", map[string]any{"from": 0, "to": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder: got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &it); err != nil {
		t.Fatal(err)
	}
	if it.Items[0].Kind != "show" {
		t.Fatalf("reorder result: %+v", it.Items)
	}
	rec = call(t, router, http.MethodPut, base+"/items/"+it.Items[1].PlannerID+"/move", map[string]any{"direction": "up"})
	if rec.Code != http.StatusOK {
		t.Fatalf("move up: got %d", rec.Code)
	}

	// rename flows into the export filename
	rec = call(t, router, http.MethodPut, base, map[string]any{"name": "Giornata al parco"})
	if rec.Code != http.StatusOK {
		t.Fatalf("rename: got %d", rec.Code)
	}
	rec = call(t, router, http.MethodGet, base+"/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("export content type: %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".pdf") {
		t.Fatalf("export disposition: %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("export body is not a PDF")
	}

	// delete destroys the planner
	rec = call(t, router, http.MethodDelete, base, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d", rec.Code)
	}
	rec = call(t, router, http.MethodGet, base, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: got %d", rec.Code)
	}
}

func TestPlannerNotFound(t *testing.T) {
	router := testRouter(t)
	rec := call(t, router, http.MethodGet, "/api/planner/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get: got %d", rec.Code)
	}
	rec = call(t, router, http.MethodGet, "/api/planner/nope/export", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("export: got %d", rec.Code)
	}
}
