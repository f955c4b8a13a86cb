package maps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enjoypark/models"
	"enjoypark/parkdata"

	"github.com/julienschmidt/httprouter"
)

func mapRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/attractions":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "name": "Tornado", "category": "adrenalina", "popularity": 4.8, "waitTime": 45, "position": []float64{30, 20}},
				{"id": 2, "name": "Splash River", "category": "acqua", "popularity": 4.2, "waitTime": 20, "position": []float64{60, 70}},
			})
		case "/shows":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 3, "name": "Magia sul Ghiaccio", "popular": true, "position": []float64{50, 50}},
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

	h := NewHandler(data)
	router := httprouter.New()
	router.GET("/api/map/points", h.GetPoints)
	router.GET("/api/map/config", h.GetConfig)
	return router
}

func getPoints(t *testing.T, router *httprouter.Router, path string) []models.MapPoint {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: got %d", path, rec.Code)
	}
	var points []models.MapPoint
	if err := json.Unmarshal(rec.Body.Bytes(), &points); err != nil {
		t.Fatal(err)
	}
	return points
}

func TestGetPointsQueries(t *testing.T) {
	router := mapRouter(t)

	// no params: everything, service points included
	all := getPoints(t, router, "/api/map/points")
	if len(all) != 2+1+3 {
		t.Fatalf("all points: got %d", len(all))
	}

	// categories narrow to the named toggles
	got := getPoints(t, router, "/api/map/points?categories=attraction,show")
	if len(got) != 3 {
		t.Fatalf("attraction,show: got %d", len(got))
	}
	for _, p := range got {
		if p.Category != models.PointAttraction && p.Category != models.PointShow {
			t.Fatalf("category %q slipped through", p.Category)
		}
	}

	// popular cut
	got = getPoints(t, router, "/api/map/points?popular=1&categories=attraction,show")
	if len(got) != 2 {
		t.Fatalf("popular: got %d", len(got))
	}

	// text search
	got = getPoints(t, router, "/api/map/points?query=tornado")
	if len(got) != 1 || got[0].Name != "Tornado" {
		t.Fatalf("query: got %+v", got)
	}
}

func TestGetConfig(t *testing.T) {
	router := mapRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/map/config", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("config: got %d", rec.Code)
	}
	var config struct {
		MapImage        string            `json:"mapImage"`
		SpritePositions map[string]string `json:"spritePositions"`
		TypeLabels      map[string]string `json:"typeLabels"`
		WaitTimeLevels  map[string]string `json:"waitTimeLevels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &config); err != nil {
		t.Fatal(err)
	}
	if config.MapImage == "" {
		t.Fatal("map image missing")
	}
	for _, cat := range []string{models.PointAttraction, models.PointRestaurant, models.PointService, models.PointShow, models.PointShop} {
		if config.SpritePositions[cat] == "" {
			t.Errorf("sprite position missing for %s", cat)
		}
		if config.TypeLabels[cat] == "" {
			t.Errorf("type label missing for %s", cat)
		}
	}
	if len(config.WaitTimeLevels) != 3 {
		t.Fatalf("wait time levels: %v", config.WaitTimeLevels)
	}
}
