// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName   = "config"
	LogLevelFlagName = "log-level"
	AddressFlagName  = "address"
)

func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "config.yaml", "path to the configuration file")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(LogLevelFlagName, "", "override the configured log level")
	_ = viper.BindPFlag(LogLevelFlagName, cmd.PersistentFlags().Lookup(LogLevelFlagName))

	cmd.PersistentFlags().String(AddressFlagName, "", "override the configured server address")
	_ = viper.BindPFlag(AddressFlagName, cmd.PersistentFlags().Lookup(AddressFlagName))
}
