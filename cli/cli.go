// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-quoter/config"
	"github.com/sprintertech/sprinter-quoter/protocol/router"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

var (
	rootCMD = &cobra.Command{
		Use:   "quoter",
		Short: "Fetch swap quotes and routes and assemble swap transactions",
	}
)

func init() {
	config.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(quoteCMD, routeCMD, swapCMD, runCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}

// loadPipeline builds the routing API client and token store from the
// configured file.
func loadPipeline() (*config.Config, *router.API, *tokens.Store, error) {
	cfg, err := config.LoadConfig(viper.GetString(config.ConfigFlagName))
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, router.NewAPI(cfg.RouterAPIConfig()), cfg.TokenStore(), nil
}
