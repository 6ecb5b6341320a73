package api

import (
	"ordertrack_server/api/health"
	"ordertrack_server/api/orders"
	"ordertrack_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	orderRoutes  *orders.OrderRoutesManager
	healthRoutes *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		orderRoutes:  orders.NewOrderRoutesManager(logger, sm.OrderService),
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.orderRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
