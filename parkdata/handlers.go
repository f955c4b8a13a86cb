package parkdata

import (
	"net/http"

	"enjoypark/filters"
	"enjoypark/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the cached collections over HTTP. The store is injected
// at route registration, no package globals.
type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func queryFrom(r *http.Request) filters.Query {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = filters.CategoryAll
	}
	return filters.Query{Query: q.Get("query"), Category: category}
}

// GET /api/attractions
func (h *Handler) GetAttractions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items := filters.Apply(h.Store.Attractions(), queryFrom(r))
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/shows
func (h *Handler) GetShows(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items := filters.Apply(h.Store.Shows(), queryFrom(r))
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/tickets
func (h *Handler) GetTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Tickets())
}

// GET /api/extras
func (h *Handler) GetExtras(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Extras())
}

// GET /api/park/status
// Combined flags plus the per-resource map, so a view that only needs
// tickets is not stuck behind an unrelated shows fetch.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"loading":   h.Store.Loading(),
		"error":     h.Store.Err(),
		"resources": h.Store.Status(),
	})
}

// POST /api/park/refresh/:resource
// Manual reload, the only recovery path after a failed fetch.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	resource := ps.ByName("resource")
	if _, ok := resourcePaths[resource]; !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown resource")
		return
	}
	if err := h.Store.Refresh(r.Context(), resource); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"refreshed": resource})
}
