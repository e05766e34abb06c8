package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/trend-digest/internal/ai"
	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/internal/service"
	"github.com/MKhiriev/trend-digest/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var configPath string
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.Parse()

	log := logger.NewLogger("trend-digest")

	cfg, err := config.Load(configPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	fmt.Println(cfg.ChannelSummary())

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	summarizer := ai.NewSummarizer(ai.NewClient(ai.ClientConfigFromEnv()), log)
	if !summarizer.Available() {
		log.Warn().Msg("no ai api key configured, summarization disabled")
	}

	services := service.NewServices(summarizer, storages, cfg, log)

	if err = services.DigestService.Housekeep(context.Background()); err != nil {
		log.Warn().Err(err).Msg("error during storage housekeeping")
	}

	log.Info().
		Bool("notifications", cfg.Notification.EnableNotification).
		Bool("crawler", cfg.Crawler.EnableCrawler).
		Str("report_mode", cfg.Report.Mode).
		Msg("trend-digest ready")
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
