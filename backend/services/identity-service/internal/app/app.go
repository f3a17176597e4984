package app

import (
	"context"
	"database/sql"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"evcharge/backend/libs/db"
	libredis "evcharge/backend/libs/redis"
	appconfig "evcharge/backend/services/identity-service/internal/config"
	httpserver "evcharge/backend/services/identity-service/internal/http"
	"evcharge/backend/services/identity-service/internal/http/handlers"
	"evcharge/backend/services/identity-service/internal/password"
	redisstore "evcharge/backend/services/identity-service/internal/redis"
	"evcharge/backend/services/identity-service/internal/repository"
	"evcharge/backend/services/identity-service/internal/service"
)

// App wires dependencies for the identity provider.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	redis  *goredis.Client
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

	redisClient, err := libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	accountRepo := repository.NewAccountRepository(sqlDB)
	hasher := password.NewBcryptHasher(0)
	tokenSvc := service.NewTokenService(cfg.JWT.Secret, cfg.JWTExpiration())
	resetStore := redisstore.NewResetTokenStore(redisClient, cfg.ResetTokenTTL())
	accountsSvc := service.NewAccountsService(accountRepo, hasher, tokenSvc, resetStore, logger)

	routes := httpserver.Routes{
		Signup:       handlers.NewSignupHandler(accountsSvc),
		Lookup:       handlers.NewLookupHandler(accountsSvc),
		Login:        handlers.NewLoginHandler(accountsSvc),
		ResetRequest: handlers.NewResetRequestHandler(accountsSvc),
		ResetConfirm: handlers.NewResetConfirmHandler(accountsSvc),
		Health:       handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		redis:  redisClient,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
