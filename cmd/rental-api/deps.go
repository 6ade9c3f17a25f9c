package main

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/api"
	"github.com/rentaldesk/rental-api/internal/core/ports"
	"github.com/rentaldesk/rental-api/internal/core/service"
	"github.com/rentaldesk/rental-api/internal/infrastructure/config"
	"github.com/rentaldesk/rental-api/internal/infrastructure/db/postgres"
	"github.com/rentaldesk/rental-api/internal/infrastructure/http/handlers"
)

func buildDeps(
	cfg *config.Config,
	log zerolog.Logger,
	db *gorm.DB,
	recorder ports.AuditRecorder,
	auditLog ports.AuditRepository,
	idem ports.IdempotencyStore,
	generator ports.TextGenerator,
	checks map[string]handlers.Check,
) api.Deps {
	scope := postgres.NewScopeResolver(db)
	rooms := postgres.NewRoomRepository(db)
	reports := service.NewReportService(postgres.NewReportRepository(db))

	return api.Deps{
		Log:       log,
		JWTSecret: cfg.JWTSecret,

		Auth:    service.NewAuthService(postgres.NewOwnerRepository(db), cfg.JWTSecret, cfg.JWTTTL, log),
		Houses:  service.NewHouseService(postgres.NewHouseRepository(db), scope, log),
		Rooms:   service.NewRoomService(rooms, scope, log),
		Assets:  service.NewAssetService(postgres.NewAssetRepository(db), scope),
		Tenancy: service.NewTenancyService(postgres.NewRentalRepository(db), rooms, scope, recorder, auditLog, idem, log),
		Billing: service.NewBillingService(postgres.NewInvoiceRepository(db), scope, recorder, idem, log),
		Reports: reports,

		RevenueReport: service.NewRevenueReportService(reports, generator, log),
		HealthChecks:  checks,
	}
}
