package services

import (
	"ordertrack_server/storage"
	"ordertrack_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	HealthService *HealthService
	OrderService  *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store storage.OrderStorage) *ServiceManager {
	healthService := NewHealthService(logger, store)
	orderService := NewOrderService(logger, cfg, store)

	return &ServiceManager{
		HealthService: healthService,
		OrderService:  orderService,
	}
}
