// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/sprintertech/sprinter-quoter/api"
	"github.com/sprintertech/sprinter-quoter/api/handlers"
	"github.com/sprintertech/sprinter-quoter/config"
	"github.com/sprintertech/sprinter-quoter/metrics"
	"github.com/sprintertech/sprinter-quoter/protocol/router"
)

var Version string

func Run() error {
	configuration, err := config.LoadConfig(viper.GetString(config.ConfigFlagName))
	if err != nil {
		return err
	}

	logLevel := configuration.Quoter.LogLevel
	if flagLevel := viper.GetString(config.LogLevelFlagName); flagLevel != "" {
		logLevel = flagLevel
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msgf("Successfully loaded configuration, version %s", Version)

	routerAPI := router.NewAPI(configuration.RouterAPIConfig())
	store := configuration.TokenStore()
	quoteHandler := handlers.NewQuoteHandler(routerAPI, store)

	requestMetrics, err := metrics.NewRequestMetrics(otel.Meter("quoter"))
	if err != nil {
		return err
	}

	address := configuration.Quoter.Address
	if flagAddress := viper.GetString(config.AddressFlagName); flagAddress != "" {
		address = flagAddress
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	api.Serve(ctx, address, quoteHandler, requestMetrics)

	log.Info().Msgf("Shutdown complete")
	_ = os.Stdout.Sync()
	return nil
}
