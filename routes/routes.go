package routes

import (
	"enjoypark/checkout"
	"enjoypark/itinerary"
	"enjoypark/live"
	"enjoypark/maps"
	"enjoypark/parkdata"
	"enjoypark/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddParkDataRoutes(router *httprouter.Router, data *parkdata.Store, rl *ratelim.RateLimiter) {
	h := parkdata.NewHandler(data)

	router.GET("/api/attractions", h.GetAttractions)
	router.GET("/api/shows", h.GetShows)
	router.GET("/api/tickets", h.GetTickets)
	router.GET("/api/extras", h.GetExtras)
	router.GET("/api/park/status", h.GetStatus)
	router.POST("/api/park/refresh/:resource", rl.Limit(h.Refresh))
}

func AddPlannerRoutes(router *httprouter.Router, store *itinerary.Store, data *parkdata.Store, rl *ratelim.RateLimiter) {
	h := itinerary.NewHandler(store, data)

	router.POST("/api/planner", rl.Limit(h.CreatePlanner))
	router.GET("/api/planner/:id", h.GetPlanner)
	router.PUT("/api/planner/:id", h.UpdatePlanner)
	router.DELETE("/api/planner/:id", h.DeletePlanner)
	router.POST("/api/planner/:id/items", h.AddItem)
	router.DELETE("/api/planner/:id/items/:itemid", h.RemoveItem)
	router.PUT("/api/planner/:id/items/:itemid/move", h.MoveItemStep)
	router.PUT("/api/planner/:id/reorder", h.Reorder)
	router.GET("/api/planner/:id/export", rl.Limit(h.ExportPDF))
}

func AddCheckoutRoutes(router *httprouter.Router, store *checkout.Store, data *parkdata.Store, rl *ratelim.RateLimiter) {
	h := checkout.NewHandler(store, data)

	router.POST("/api/checkout", rl.Limit(h.CreateSession))
	router.GET("/api/checkout/:id", h.GetSession)
	router.DELETE("/api/checkout/:id", h.ResetSession)
	router.PUT("/api/checkout/:id/selection", h.UpdateSelection)
	router.PUT("/api/checkout/:id/extras", h.UpdateExtras)
	router.PUT("/api/checkout/:id/holders", h.UpdateHolders)
	router.PUT("/api/checkout/:id/payment", h.UpdatePayment)
	router.POST("/api/checkout/:id/advance", h.Advance)
	router.POST("/api/checkout/:id/back", h.Back)
	router.GET("/api/checkout/:id/passes", h.GetPasses)
	router.GET("/api/checkout/:id/passes/:ticketid/qr", h.GetPassQR)
}

func AddMapRoutes(router *httprouter.Router, data *parkdata.Store) {
	h := maps.NewHandler(data)

	router.GET("/api/map/points", h.GetPoints)
	router.GET("/api/map/config", h.GetConfig)
}

// AddLiveRoutes needs the running hub, so main passes it in.
func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/waittimes", live.WebSocketHandler(hub))
}
