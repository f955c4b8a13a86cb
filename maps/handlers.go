package maps

import (
	"net/http"
	"strings"

	"enjoypark/models"
	"enjoypark/parkdata"
	"enjoypark/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Data *parkdata.Store
}

func NewHandler(data *parkdata.Store) *Handler {
	return &Handler{Data: data}
}

// GET /api/map/points?query=&popular=1&categories=attraction,show,...
// Omitting categories keeps every toggle on.
func (h *Handler) GetPoints(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	toggles := DefaultToggles()
	if raw := q.Get("categories"); raw != "" {
		toggles = Toggles{}
		for _, c := range strings.Split(raw, ",") {
			switch strings.TrimSpace(c) {
			case models.PointAttraction:
				toggles.Attractions = true
			case models.PointRestaurant:
				toggles.Restaurants = true
			case models.PointService:
				toggles.Services = true
			case models.PointShow:
				toggles.Shows = true
			case models.PointShop:
				toggles.Shops = true
			}
		}
	}

	points := BuildPoints(h.Data.Attractions(), h.Data.Shows())
	points = FilterPoints(points, q.Get("query"), toggles, q.Get("popular") == "1")
	utils.RespondWithJSON(w, http.StatusOK, points)
}

// GET /api/map/config
// Static render metadata the map client needs: sprite sheet offsets,
// legend labels and the wait-time badge bands.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var config struct {
		MapImage        string            `json:"mapImage"`
		SpritePositions map[string]string `json:"spritePositions"`
		TypeLabels      map[string]string `json:"typeLabels"`
		WaitTimeLevels  map[string]string `json:"waitTimeLevels"`
	}

	config.MapImage = "/park-map.jpg"

	config.SpritePositions = map[string]string{
		models.PointAttraction: "0px 0px",
		models.PointRestaurant: "0px -32px",
		models.PointService:    "0px -64px",
		models.PointShow:       "0px -96px",
		models.PointShop:       "0px -128px",
	}

	config.TypeLabels = map[string]string{
		models.PointAttraction: "🎢 Attrazioni",
		models.PointRestaurant: "🍔 Ristoranti",
		models.PointService:    "ℹ️ Servizi",
		models.PointShow:       "🎭 Spettacoli",
		models.PointShop:       "🛍️ Negozi",
	}

	config.WaitTimeLevels = map[string]string{
		"low":    "0-15 min",
		"medium": "16-30 min",
		"high":   "oltre 30 min",
	}

	utils.RespondWithJSON(w, http.StatusOK, config)
}
