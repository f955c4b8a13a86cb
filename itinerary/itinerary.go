// Package itinerary is the visit planner: an ordered list of attractions
// and shows the guest intends to hit, with manual reordering, a total
// time estimate and a printable PDF.
package itinerary

import (
	"fmt"
	"sync/atomic"
	"time"

	"enjoypark/models"
)

const DefaultName = "Il mio itinerario"

// Itinerary is one planner session. Items keep insertion order; the same
// attraction may appear more than once, each entry with its own composite
// id.
type Itinerary struct {
	ID        string               `json:"itineraryId"`
	Name      string               `json:"name"`
	VisitDate string               `json:"visitDate,omitempty"` // "2006-01-02"
	Items     []models.PlannerItem `json:"items"`
}

// NewItemFromAttraction copies what the planner needs off an attraction.
func NewItemFromAttraction(a models.Attraction) models.PlannerItem {
	return models.PlannerItem{
		PlannerID: compositeID(models.KindAttraction, a.ID),
		Kind:      models.KindAttraction,
		SourceID:  a.ID,
		Name:      a.Name,
		Location:  a.Location,
		Category:  a.Category,
		Duration:  a.Duration,
		WaitTime:  a.WaitTime,
	}
}

// NewItemFromShow copies a show, optionally with the chosen show time.
func NewItemFromShow(s models.Show, chosenTime string) models.PlannerItem {
	return models.PlannerItem{
		PlannerID: compositeID(models.KindShow, s.ID),
		Kind:      models.KindShow,
		SourceID:  s.ID,
		Name:      s.Name,
		Location:  s.Location,
		Category:  s.Category,
		Duration:  s.Duration,
		Time:      chosenTime,
	}
}

var itemSeq atomic.Uint64

// compositeID makes entries of the same source distinguishable:
// kind + source id + creation timestamp, plus a process-wide sequence so
// two adds within the same millisecond still get distinct ids.
func compositeID(kind string, sourceID int) string {
	return fmt.Sprintf("%s-%d-%d-%d", kind, sourceID, time.Now().UnixMilli(), itemSeq.Add(1))
}

// Add appends an item. No deduplication on purpose.
func (it *Itinerary) Add(item models.PlannerItem) {
	it.Items = append(it.Items, item)
}

// Remove deletes the single entry with a matching composite id and
// reports whether one was found.
func (it *Itinerary) Remove(plannerID string) bool {
	for i, item := range it.Items {
		if item.PlannerID == plannerID {
			it.Items = append(it.Items[:i], it.Items[i+1:]...)
			return true
		}
	}
	return false
}

// MoveItem returns a new slice with the element at from moved to to,
// everything in between shifted. Out-of-range indices return an
// unchanged copy.
func MoveItem(items []models.PlannerItem, from, to int) []models.PlannerItem {
	out := make([]models.PlannerItem, len(items))
	copy(out, items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.PlannerItem{moved}, out[to:]...)...)
	return out
}

// Reorder moves one item to a new position.
func (it *Itinerary) Reorder(from, to int) {
	it.Items = MoveItem(it.Items, from, to)
}

func (it *Itinerary) indexOf(plannerID string) int {
	for i, item := range it.Items {
		if item.PlannerID == plannerID {
			return i
		}
	}
	return -1
}

// MoveUp swaps the entry one position towards the front. No-op at the
// top or for an unknown id.
func (it *Itinerary) MoveUp(plannerID string) {
	if i := it.indexOf(plannerID); i > 0 {
		it.Reorder(i, i-1)
	}
}

func (it *Itinerary) MoveDown(plannerID string) {
	if i := it.indexOf(plannerID); i >= 0 && i < len(it.Items)-1 {
		it.Reorder(i, i+1)
	}
}

// TotalDuration is the estimated visit time in minutes: each item's own
// duration, plus the wait time for attractions. Malformed durations
// already decoded to zero, so bad backend data never breaks the total.
func (it *Itinerary) TotalDuration() int {
	total := 0
	for _, item := range it.Items {
		total += item.Duration.Int()
		if item.Kind == models.KindAttraction {
			total += item.WaitTime.Int()
		}
	}
	return total
}

// FormatMinutes renders a minute count as "1h 20min", "45 min" or
// "0 min".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
	return fmt.Sprintf("%d min", mins)
}
