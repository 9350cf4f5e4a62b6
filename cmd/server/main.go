package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "betcontrol/internal/adapter/http"
	"betcontrol/internal/adapter/http/handler"
	"betcontrol/internal/adapter/rates"
	postgresRepo "betcontrol/internal/adapter/repository/postgres"
	redisRepo "betcontrol/internal/adapter/repository/redis"
	"betcontrol/internal/infrastructure/config"
	"betcontrol/internal/infrastructure/logger"
	"betcontrol/internal/infrastructure/postgres"
	"betcontrol/internal/infrastructure/redis"
	"betcontrol/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Run migrations
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	usuarioRepo := postgresRepo.NewUsuarioRepository(pool)
	apostaRepo := postgresRepo.NewApostaRepository(pool)
	limiteRepo := postgresRepo.NewLimiteRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Exchange-rate provider with a short-TTL cache in front
	rateProvider := rates.NewCachedProvider(
		rates.NewClient(cfg.ExchangeAPIURL, cfg.ExchangeTimeout),
		cache,
		cfg.RateCacheTTL,
	)

	// Initialize use cases
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, idGen)
	apostaUC := usecase.NewApostaUseCase(txManager, apostaRepo, usuarioRepo, limiteRepo, rateProvider, idGen)
	limiteUC := usecase.NewLimiteUseCase(limiteRepo, apostaRepo, usuarioRepo, idGen)

	// Initialize handlers
	usuarioHandler := handler.NewUsuarioHandler(usuarioUC)
	apostaHandler := handler.NewApostaHandler(apostaUC)
	limiteHandler := handler.NewLimiteHandler(limiteUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		UsuarioHandler: usuarioHandler,
		ApostaHandler:  apostaHandler,
		LimiteHandler:  limiteHandler,
		HealthHandler:  healthHandler,
		Logger:         log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
