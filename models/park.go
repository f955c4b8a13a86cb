package models

// Attraction is a ride as served by the upstream park backend.
// Collections are replaced wholesale on refetch, never mutated in place.
type Attraction struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription,omitempty"`
	Category         string     `json:"category"` // e.g. "adrenalina", "acqua", "famiglia"
	WaitTime         Minutes    `json:"waitTime"`
	MinHeight        int        `json:"minHeight,omitempty"` // cm
	Image            string     `json:"image,omitempty"`
	Location         string     `json:"location"`
	Intensity        string     `json:"intensity,omitempty"`
	Duration         Minutes    `json:"duration"`
	Popularity       float64    `json:"popularity"`
	Tags             []string   `json:"tags,omitempty"`
	Features         []string   `json:"features,omitempty"`
	Position         [2]float64 `json:"position"` // x,y on the 0..100 park plane
}

type Show struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription,omitempty"`
	Location         string     `json:"location"`
	Duration         Minutes    `json:"duration"`
	Times            []string   `json:"times,omitempty"` // "HH:MM"
	Category         string     `json:"category"`
	Image            string     `json:"image,omitempty"`
	Rating           float64    `json:"rating"`
	Popular          bool       `json:"popular"`
	Capacity         int        `json:"capacity,omitempty"`
	Features         []string   `json:"features,omitempty"`
	Position         [2]float64 `json:"position"`
}

// Ticket is a purchasable tier: standard, premium, family or season.
type Ticket struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"` // EUR per person
	Features    []string `json:"features,omitempty"`
	Image       string   `json:"image,omitempty"`
	Badge       string   `json:"badge,omitempty"`
}

// Extra is an optional paid add-on (fastpass, parking, meal...).
type Extra struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// TicketHolder is one attendee's identity record, required before payment.
type TicketHolder struct {
	TicketType  string `json:"ticketType"` // "adult" or "child"
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

const (
	HolderAdult = "adult"
	HolderChild = "child"
)

// PlannerItem is one itinerary entry. PlannerID is a composite identity
// (kind + source id + creation timestamp) so the same attraction can sit
// in the itinerary more than once, each entry tracked on its own.
type PlannerItem struct {
	PlannerID string  `json:"plannerId"`
	Kind      string  `json:"type"` // "attraction" or "show"
	SourceID  int     `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Category  string  `json:"category,omitempty"`
	Duration  Minutes `json:"duration"`
	WaitTime  Minutes `json:"waitTime,omitempty"`
	Time      string  `json:"time,omitempty"` // chosen show time, shows only
}

const (
	KindAttraction = "attraction"
	KindShow       = "show"
)

// MapPoint is the view-model for one marker on the interactive park map.
// It is recomputed from the source collections on every request, never
// stored.
type MapPoint struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"` // attraction | restaurant | service | show | shop
	Subcategory string     `json:"subcategory"`
	Position    [2]float64 `json:"position"`
	WaitTime    Minutes    `json:"waitTime,omitempty"`
	Image       string     `json:"image,omitempty"`
	Details     []string   `json:"details,omitempty"`
	Color       string     `json:"color,omitempty"`
	Rating      float64    `json:"rating,omitempty"`
	Popular     bool       `json:"popular"`
}

const (
	PointAttraction = "attraction"
	PointRestaurant = "restaurant"
	PointService    = "service"
	PointShow       = "show"
	PointShop       = "shop"
)
