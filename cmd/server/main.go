package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/handler"
	"github.com/MKhiriev/go-estate/internal/locker"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/server"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("estate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("payments_enabled", cfg.Adapter.Payment.Enabled()).
		Bool("unlock_requires_payment", cfg.App.UnlockRequiresPayment).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	lock, closeLock, err := locker.New(ctx, cfg.Locker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating locker")
	}
	defer closeLock()

	var paymentAdapter adapter.PaymentAdapter
	if cfg.Adapter.Payment.Enabled() {
		paymentAdapter, err = adapter.NewRazorpayAdapter(cfg.Adapter.Payment, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating payment adapter")
		}
	} else {
		log.Warn().Msg("payment provider is not configured, paid unlocks are disabled")
	}

	services, err := service.NewServices(storages, paymentAdapter, lock, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
