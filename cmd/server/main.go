package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/adapter"
	"github.com/MKhiriev/go-board-keeper/internal/cache"
	"github.com/MKhiriev/go-board-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/go-board-keeper/internal/handler/http"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/server"
	"github.com/MKhiriev/go-board-keeper/internal/service"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close(ctx)

	redisCache, err := cache.NewConnectRedis(cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to cache")
	}
	defer redisCache.Close()

	var ai adapter.AIClient
	if cfg.Adapter.GeminiAPIKey != "" {
		if ai, err = adapter.NewGeminiClient(cfg.Adapter, log); err != nil {
			log.Fatal().Err(err).Msg("error creating AI client")
		}
	} else {
		log.Warn().Msg("no AI api key configured, chatbot runs in degraded mode")
	}
	news := adapter.NewNewsClient(cfg.Adapter, log)

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, redisCache, ai, news, cfg, log)
	handler := handlerhttp.NewHandler(services, validators.NewRequestValidator(), log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
