package orders

import (
	"ordertrack_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orm.CreateOrders)
		r.Get("/", orm.ListOrders)
		r.Patch("/", orm.UpdateOrder)
		r.Delete("/", orm.DeleteOrder)

		r.Get("/dashboard", orm.Dashboard)
		r.Get("/summary/{date}", orm.DateSummary)
	})
}
