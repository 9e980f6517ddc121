package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/node-reporter/internal/app"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	// stdout carries JSON lines only
	fmt.Fprint(os.Stderr, buildInfo)
	utils.UserAgent = "node-reporter/" + buildInfo.BuildVersion()

	log := logger.NewLogger("node-reporter")
	logBuildInfo(log, buildInfo)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter, err := app.NewApp(ctx, cfg, app.Options{}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init reporter error")
	}

	if err = reporter.Run(ctx); err != nil {
		log.Error().Err(err).Msg("reporter run error")
	}
}

func logBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	log.Info().
		Str("version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("node-reporter starting")
}
