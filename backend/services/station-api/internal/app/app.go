package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"evcharge/backend/libs/db"
	appconfig "evcharge/backend/services/station-api/internal/config"
	httpserver "evcharge/backend/services/station-api/internal/http"
	"evcharge/backend/services/station-api/internal/http/handlers"
	"evcharge/backend/services/station-api/internal/identity"
	"evcharge/backend/services/station-api/internal/repository"
	"evcharge/backend/services/station-api/internal/service"
)

// App wires dependencies for the station API.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	logger *zap.Logger
}

// New builds the application graph.
func New(ctx context.Context, cfg *appconfig.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	if err := repository.Migrate(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	stationRepo := repository.NewStationRepository(sqlDB)
	userRepo := repository.NewUserRepository(sqlDB)
	provider := identity.NewClient(cfg.Identity.BaseURL, nil)

	stationSvc := service.NewStationService(stationRepo, logger)
	userSvc := service.NewUserService(userRepo, provider, logger)

	if cfg.SeedOnBoot {
		if err := stationSvc.SeedIfEmpty(ctx); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	routes := httpserver.Routes{
		CheckEmail:    handlers.NewCheckEmailHandler(userSvc),
		Register:      handlers.NewRegisterUserHandler(userSvc),
		LoggedInUser:  handlers.NewLoggedInUserHandler(userSvc),
		ListStations:  handlers.NewListStationsHandler(stationSvc),
		CreateStation: handlers.NewCreateStationHandler(stationSvc),
		UpdateStation: handlers.NewUpdateStationHandler(stationSvc),
		DeleteStation: handlers.NewDeleteStationHandler(stationSvc),
		ResetStations: handlers.NewResetStationsHandler(stationSvc),
		Health:        handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
