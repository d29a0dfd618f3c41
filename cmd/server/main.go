package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Skotchmaster/shop_catalog/internal/cache"
	"github.com/Skotchmaster/shop_catalog/internal/config"
	"github.com/Skotchmaster/shop_catalog/internal/db"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	loggingmw "github.com/Skotchmaster/shop_catalog/internal/middleware/logging"
	"github.com/Skotchmaster/shop_catalog/internal/middleware/ratelimit"
	"github.com/Skotchmaster/shop_catalog/internal/mykafka"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
	"github.com/Skotchmaster/shop_catalog/internal/search"
	"github.com/Skotchmaster/shop_catalog/internal/service"
	httpserver "github.com/Skotchmaster/shop_catalog/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env")
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With().Str("service", cfg.ServiceName).Logger()
	log.Logger = logger

	config.MustNonEmptyBytes(cfg.JWTSecret, "MY_SECRET")
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err == nil && cfg.AutoMigrate {
		err = db.Migrate(ctx, gdb)
	}
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("db_init_failed")
	}

	prod := mykafka.NewProducer(cfg.KafkaBrokers)
	rdb := cache.New(cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})

	esCtx, esCancel := context.WithTimeout(context.Background(), 5*time.Second)
	esClient, err := search.NewClient(esCtx, search.Config{
		URL:      cfg.ESURL,
		User:     cfg.ESUser,
		Password: cfg.ESPassword,
		Index:    cfg.ESIndex,
	})
	esCancel()
	if err != nil {
		logger.Warn().Err(err).Msg("search_disabled")
		esClient = nil
	}

	logger.Info().
		Bool("kafka", prod.Enabled()).
		Bool("redis", rdb.Enabled()).
		Bool("elasticsearch", esClient.Enabled()).
		Bool("strict_status_codes", cfg.StrictStatusCodes).
		Bool("enforce_ownership", cfg.EnforceOwnership).
		Msg("infra_configured")

	r := repo.New(gdb)
	handler := &httpserver.ShopHTTP{
		Auth:    &service.AuthService{Repo: r, Secret: cfg.JWTSecret, TTL: cfg.TokenTTL, Events: prod},
		Catalog: &service.CatalogService{Repo: r, Cache: rdb, Search: esClient},
		Users:   &service.UserService{Repo: r},
		Items:   &service.ItemService{Repo: r, Events: prod, EnforceOwnership: cfg.EnforceOwnership},
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.ErrorHandler(cfg.StrictStatusCodes)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Use(ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst))

	httpserver.Register(e, &httpserver.Deps{
		Handler:          handler,
		JWTSecret:        cfg.JWTSecret,
		EnforceOwnership: cfg.EnforceOwnership,
		SearchEnabled:    esClient.Enabled(),
		StaticDir:        cfg.StaticDir,
		Ready: func(ctx context.Context) error {
			if err := db.Ping(ctx, gdb); err != nil {
				return err
			}
			return rdb.Ping(ctx)
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server_shutdown_failed")
	}
	if err := prod.Close(); err != nil {
		logger.Error().Err(err).Msg("kafka_close_failed")
	}
	if err := rdb.Close(); err != nil {
		logger.Error().Err(err).Msg("redis_close_failed")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("db_close_failed")
		}
	}

	logger.Info().Msg("shutdown_complete")
}
