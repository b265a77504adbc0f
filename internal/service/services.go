package service

import (
	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/logger"
)

// ClientServices bundles the API client facade. All services share one
// dispatcher.
type ClientServices struct {
	BillingService   BillingService
	CommunityService CommunityService
}

// NewClientServices wires the facade onto dispatcher using the resolved
// environment configuration.
func NewClientServices(dispatcher adapter.Dispatcher, cfg config.Configuration, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		BillingService:   NewBillingService(dispatcher, cfg, logger),
		CommunityService: NewCommunityService(dispatcher, logger),
	}
}
