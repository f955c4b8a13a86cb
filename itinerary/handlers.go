package itinerary

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"enjoypark/models"
	"enjoypark/parkdata"
	"enjoypark/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
	Data  *parkdata.Store
}

func NewHandler(store *Store, data *parkdata.Store) *Handler {
	return &Handler{Store: store, Data: data}
}

// POST /api/planner
func (h *Handler) CreatePlanner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Name      string `json:"name"`
		VisitDate string `json:"visitDate"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // empty body is fine, defaults apply
	}
	it := h.Store.Create(req.Name, req.VisitDate)
	utils.RespondWithJSON(w, http.StatusCreated, it)
}

// GET /api/planner/:id
func (h *Handler) GetPlanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"itinerary":     it,
		"totalDuration": it.TotalDuration(),
		"formatted":     FormatMinutes(it.TotalDuration()),
	})
}

// PUT /api/planner/:id
func (h *Handler) UpdatePlanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Name      string `json:"name"`
		VisitDate string `json:"visitDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	it, ok := h.Store.Update(ps.ByName("id"), func(it *Itinerary) {
		if req.Name != "" {
			it.Name = req.Name
		}
		if req.VisitDate != "" {
			it.VisitDate = req.VisitDate
		}
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// DELETE /api/planner/:id
func (h *Handler) DeletePlanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Store.Delete(ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}

// POST /api/planner/:id/items
// Adds an attraction or show by source id; duplicates are allowed and get
// their own composite id.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Kind     string `json:"type"`
		SourceID int    `json:"id"`
		Time     string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	var item models.PlannerItem
	switch req.Kind {
	case models.KindAttraction:
		a, ok := h.Data.AttractionByID(req.SourceID)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "attraction not found")
			return
		}
		item = NewItemFromAttraction(a)
	case models.KindShow:
		s, ok := h.Data.ShowByID(req.SourceID)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "show not found")
			return
		}
		item = NewItemFromShow(s, req.Time)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "type must be attraction or show")
		return
	}

	it, ok := h.Store.Update(ps.ByName("id"), func(it *Itinerary) { it.Add(item) })
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"item": item, "itinerary": it})
}

// DELETE /api/planner/:id/items/:itemid
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	removed := false
	it, ok := h.Store.Update(ps.ByName("id"), func(it *Itinerary) {
		removed = it.Remove(ps.ByName("itemid"))
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	if !removed {
		utils.RespondWithError(w, http.StatusNotFound, "item not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// PUT /api/planner/:id/items/:itemid/move
func (h *Handler) MoveItemStep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	dir := strings.ToLower(req.Direction)
	if dir != "up" && dir != "down" {
		utils.RespondWithError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}
	it, ok := h.Store.Update(ps.ByName("id"), func(it *Itinerary) {
		if dir == "up" {
			it.MoveUp(ps.ByName("itemid"))
		} else {
			it.MoveDown(ps.ByName("itemid"))
		}
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// PUT /api/planner/:id/reorder
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	it, ok := h.Store.Update(ps.ByName("id"), func(it *Itinerary) {
		it.Reorder(req.From, req.To)
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/planner/:id/export
// Streams the itinerary as a PDF named after the planner.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "planner not found")
		return
	}

	pdf := BuildPDF(&it)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	filename := utils.SanitizeFilename(it.Name) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
