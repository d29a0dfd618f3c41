package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Skotchmaster/shop_catalog/internal/cache"
	"github.com/Skotchmaster/shop_catalog/internal/config"
	"github.com/Skotchmaster/shop_catalog/internal/db"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
	"github.com/Skotchmaster/shop_catalog/internal/search"
	"github.com/Skotchmaster/shop_catalog/internal/seed"
	"github.com/Skotchmaster/shop_catalog/internal/service"
)

//go:embed catalog.json
var defaultFixture []byte

func main() {
	file := flag.String("file", "", "path to a JSON fixture (defaults to the built-in catalog)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With().Str("service", cfg.ServiceName+"-seed").Logger()
	log.Logger = logger
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	var src io.Reader = bytes.NewReader(defaultFixture)
	if *file != "" {
		fh, err := os.Open(*file)
		if err != nil {
			logger.Fatal().Err(err).Str("file", *file).Msg("open_fixture_failed")
		}
		defer fh.Close()
		src = fh
	}

	fixture, err := seed.Decode(src)
	if err != nil {
		logger.Fatal().Err(err).Msg("decode_fixture_failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logging.IntoContext(ctx, logger)

	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db_open_failed")
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := db.Migrate(ctx, gdb); err != nil {
		logger.Fatal().Err(err).Msg("migrate_failed")
	}

	if _, err := seed.Apply(ctx, gdb, fixture); err != nil {
		logger.Fatal().Err(err).Msg("seed_failed")
	}
	if err := seed.ResetSequences(ctx, gdb, cfg.DBDriver); err != nil {
		logger.Fatal().Err(err).Msg("reset_sequences_failed")
	}

	rdb := cache.New(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB, TTL: cfg.CacheTTL})
	defer rdb.Close()

	esClient, err := search.NewClient(ctx, search.Config{
		URL:      cfg.ESURL,
		User:     cfg.ESUser,
		Password: cfg.ESPassword,
		Index:    cfg.ESIndex,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("search_client_failed")
	}

	catalog := &service.CatalogService{Repo: repo.New(gdb), Cache: rdb, Search: esClient}
	n, err := catalog.Reindex(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("reindex_failed")
	}

	logger.Info().Int("indexed", n).Bool("search_enabled", esClient.Enabled()).Msg("seed_complete")
}
