package service

import (
	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/locker"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
)

// Services aggregates every service consumed by the HTTP handlers.
type Services struct {
	AuthService    AuthService
	ListingService ListingService
	ContactService ContactService
	PaymentService PaymentService
	AppInfoService AppInfoService
}

// NewServices builds the services on top of storages. paymentAdapter is nil
// when no payment provider is configured; in that case payment operations
// report ErrPaymentsDisabled and free unlocks stay available.
func NewServices(storages *store.Storages, paymentAdapter adapter.PaymentAdapter, lock locker.Locker, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	listingService := NewListingValidationService().Wrap(NewListingService(storages.ListingRepository, logger))

	requirePayment := paymentAdapter != nil && cfg.App.UnlockRequiresPayment

	return &Services{
		AuthService:    authService,
		ListingService: listingService,
		ContactService: NewContactService(storages, requirePayment, logger),
		PaymentService: NewPaymentService(storages, paymentAdapter, lock, cfg.Adapter.Payment, logger),
		AppInfoService: appInfoService,
	}, nil
}
