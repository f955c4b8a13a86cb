package maps

import "enjoypark/models"

// Fixed service points: these are park infrastructure, not backend data,
// so they live here and get merged into every point list.
var servicePoints = []models.MapPoint{
	{
		ID:          6,
		Name:        "Caffè del Parco",
		Description: "Caffetteria e pasticceria con prodotti freschi",
		Category:    models.PointRestaurant,
		Subcategory: "caffetteria",
		Position:    [2]float64{40, 35},
		Details:     []string{"Orario: 9:00 - 20:00", "Specialità: Pasticceria artigianale", "Wi-Fi gratuito"},
		Color:       "from-amber-500 to-orange-600",
		Rating:      4.2,
	},
	{
		ID:          7,
		Name:        "Infermeria",
		Description: "Punto di primo soccorso per emergenze mediche",
		Category:    models.PointService,
		Subcategory: "pronto-soccorso",
		Position:    [2]float64{45, 55},
		Details:     []string{"Aperto durante tutto l'orario del parco", "Personale medico qualificato", "Defibrillatore disponibile"},
		Color:       "from-purple-500 to-violet-600",
		Rating:      5.0,
	},
	{
		ID:          8,
		Name:        "Nursery",
		Description: "Area dedicata alla cura dei bambini piccoli",
		Category:    models.PointService,
		Subcategory: "bambini",
		Position:    [2]float64{55, 65},
		Details:     []string{"Fasciatoi", "Area allattamento riservata", "Scaldabiberon disponibili"},
		Color:       "from-purple-500 to-violet-600",
		Rating:      4.8,
	},
}

// ServicePoints returns a copy of the fixed entries.
func ServicePoints() []models.MapPoint {
	out := make([]models.MapPoint, len(servicePoints))
	copy(out, servicePoints)
	return out
}
