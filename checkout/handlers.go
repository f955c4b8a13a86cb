package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

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

// POST /api/checkout
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := h.Store.Create()
	utils.RespondWithJSON(w, http.StatusCreated, h.view(sess))
}

// GET /api/checkout/:id
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.view(sess))
}

// DELETE /api/checkout/:id
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Store.Reset(ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reset": true})
}

// PUT /api/checkout/:id/selection
func (h *Handler) UpdateSelection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		VisitDate  *string `json:"visitDate"`
		Adults     *int    `json:"adults"`
		Children   *int    `json:"children"`
		TicketType *string `json:"ticketType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	sess, ok, err := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		if req.VisitDate != nil {
			s.VisitDate = *req.VisitDate
		}
		if req.Adults != nil || req.Children != nil {
			adults, children := s.Adults, s.Children
			if req.Adults != nil {
				adults = *req.Adults
			}
			if req.Children != nil {
				children = *req.Children
			}
			if err := s.SetCounts(adults, children); err != nil {
				return err
			}
		}
		if req.TicketType != nil && *req.TicketType != "" {
			s.TicketType = *req.TicketType
		}
		return nil
	})
	h.respond(w, sess, ok, err)
}

// PUT /api/checkout/:id/extras
// Replaces the extras selection; toggling off is sending the list
// without the id.
func (h *Handler) UpdateExtras(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Extras []string `json:"extras"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	sess, ok, err := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		if req.Extras == nil {
			s.Extras = []string{}
		} else {
			s.Extras = req.Extras
		}
		return nil
	})
	h.respond(w, sess, ok, err)
}

// PUT /api/checkout/:id/holders
func (h *Handler) UpdateHolders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Holders []models.TicketHolder `json:"holders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	sess, ok, err := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		s.Holders = req.Holders
		return nil
	})
	h.respond(w, sess, ok, err)
}

// PUT /api/checkout/:id/payment
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	sess, ok, err := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		s.Payment = req
		return nil
	})
	h.respond(w, sess, ok, err)
}

// POST /api/checkout/:id/advance
// 422 when the stage gate blocks; the body names the gate so clients can
// keep their continue control disabled.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok, err := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		return s.Advance()
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	if err != nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"error": err.Error(),
			"stage": sess.Stage,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.view(sess))
}

// POST /api/checkout/:id/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok, _ := h.Store.Update(ps.ByName("id"), func(s *Session) error {
		s.Back()
		return nil
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.view(sess))
}

// GET /api/checkout/:id/passes
func (h *Handler) GetPasses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	if sess.Stage != StageComplete {
		utils.RespondWithError(w, http.StatusConflict, "order is not complete")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sess.Passes)
}

// GET /api/checkout/:id/passes/:ticketid/qr
// PNG at the fixed pass size; ?download=1 asks the browser to save it.
func (h *Handler) GetPassQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	for _, pass := range sess.Passes {
		if pass.TicketID != ps.ByName("ticketid") {
			continue
		}
		png, err := pass.QRPNG(QRSize)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to generate QR code")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if r.URL.Query().Get("download") == "1" {
			w.Header().Set("Content-Disposition", "attachment; filename=qr-code.png")
		}
		w.WriteHeader(http.StatusOK)
		w.Write(png)
		return
	}
	utils.RespondWithError(w, http.StatusNotFound, "pass not found")
}

// view decorates a session with its current gate and order totals.
func (h *Handler) view(sess Session) utils.M {
	out := utils.M{
		"session": sess,
		"totals":  sess.Totals(h.Data.Tickets(), h.Data.Extras()),
	}
	if err := sess.CanAdvance(); err != nil && !errors.Is(err, ErrAlreadyDone) {
		out["gate"] = err.Error()
	}
	return out
}

func (h *Handler) respond(w http.ResponseWriter, sess Session, ok bool, err error) {
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.view(sess))
}
