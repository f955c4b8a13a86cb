// Package maps projects the park's attractions, shows and fixed service
// points into marker view-models for the interactive map. Points are
// recomputed from the current collections on every request and never
// stored.
package maps

import (
	"fmt"
	"strings"

	"enjoypark/filters"
	"enjoypark/models"
)

// popularityBar: an attraction counts as popular above this score. Shows
// carry their own flag.
const popularityBar = 4.5

func categoryGradient(subcategory string) string {
	switch subcategory {
	case "adrenalina":
		return "from-red-500 to-orange-600"
	case "acqua":
		return "from-blue-500 to-cyan-600"
	case "famiglia":
		return "from-amber-500 to-yellow-600"
	default:
		return "from-emerald-500 to-teal-600"
	}
}

const showGradient = "from-pink-500 to-rose-600"

// BuildPoints merges attractions, shows and the fixed service points into
// one marker list.
func BuildPoints(attractions []models.Attraction, shows []models.Show) []models.MapPoint {
	points := make([]models.MapPoint, 0, len(attractions)+len(shows)+len(servicePoints))
	for _, a := range attractions {
		points = append(points, fromAttraction(a))
	}
	for _, s := range shows {
		points = append(points, fromShow(s))
	}
	points = append(points, servicePoints...)
	return points
}

func fromAttraction(a models.Attraction) models.MapPoint {
	return models.MapPoint{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Category:    models.PointAttraction,
		Subcategory: a.Category,
		Position:    a.Position,
		WaitTime:    a.WaitTime,
		Image:       a.Image,
		Details: []string{
			fmt.Sprintf("Altezza minima: %dcm", a.MinHeight),
			fmt.Sprintf("Durata: %d min", a.Duration.Int()),
			"Intensità: " + a.Intensity,
		},
		Color:   categoryGradient(a.Category),
		Rating:  a.Popularity,
		Popular: a.Popularity > popularityBar,
	}
}

func fromShow(s models.Show) models.MapPoint {
	return models.MapPoint{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    models.PointShow,
		Subcategory: s.Category,
		Position:    s.Position,
		Image:       s.Image,
		Details: []string{
			fmt.Sprintf("Durata: %d min", s.Duration.Int()),
			"Orari: " + strings.Join(s.Times, ", "),
			fmt.Sprintf("Capacità: %d persone", s.Capacity),
		},
		Color:   showGradient,
		Rating:  s.Rating,
		Popular: s.Popular,
	}
}

// Toggles is the category membership filter set; zero value shows
// nothing, DefaultToggles everything.
type Toggles struct {
	Attractions bool `json:"attractions"`
	Restaurants bool `json:"restaurants"`
	Services    bool `json:"services"`
	Shows       bool `json:"shows"`
	Shops       bool `json:"shops"`
}

func DefaultToggles() Toggles {
	return Toggles{Attractions: true, Restaurants: true, Services: true, Shows: true, Shops: true}
}

func (t Toggles) allows(category string) bool {
	switch category {
	case models.PointAttraction:
		return t.Attractions
	case models.PointRestaurant:
		return t.Restaurants
	case models.PointService:
		return t.Services
	case models.PointShow:
		return t.Shows
	case models.PointShop:
		return t.Shops
	default:
		return false
	}
}

// FilterPoints narrows the merged list by free text, category toggles and
// the only-popular predicate, preserving order.
func FilterPoints(points []models.MapPoint, query string, toggles Toggles, onlyPopular bool) []models.MapPoint {
	matched := filters.Apply(points, filters.Query{Query: query, Category: filters.CategoryAll})
	out := make([]models.MapPoint, 0, len(matched))
	for _, p := range matched {
		if onlyPopular && !p.Popular {
			continue
		}
		if !toggles.allows(p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// WaitTimeLevel buckets a wait into the badge bands the map legend uses.
func WaitTimeLevel(minutes int) string {
	switch {
	case minutes <= 0:
		return "none"
	case minutes <= 15:
		return "low"
	case minutes <= 30:
		return "medium"
	default:
		return "high"
	}
}
