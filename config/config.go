// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-quoter/protocol/router"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

type RawQuoterConfig struct {
	RouterURL         string `mapstructure:"routerUrl" default:"https://api.uniswap.org/v1"`
	APIKey            string `mapstructure:"apiKey"`
	SlippageTolerance uint64 `mapstructure:"slippageTolerance" default:"2"`
	Deadline          uint64 `mapstructure:"deadline" default:"200"`
	NativeInputOnly   bool   `mapstructure:"nativeInputOnly"`

	LogLevel string `mapstructure:"logLevel" default:"info"`
	Address  string `mapstructure:"address" default:":8080"`

	PriceURL    string `mapstructure:"priceUrl" default:"https://pro-api.coinmarketcap.com"`
	PriceAPIKey string `mapstructure:"priceApiKey"`
}

type RawTokenConfig struct {
	Symbol   string `mapstructure:"symbol"`
	Name     string `mapstructure:"name"`
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
	LogoURI  string `mapstructure:"logoUri"`
}

type RawChainConfig struct {
	Name                string           `mapstructure:"name"`
	Id                  *uint64          `mapstructure:"id"`
	NativeSymbol        string           `mapstructure:"nativeSymbol" default:"ETH"`
	WrappedNativeSymbol string           `mapstructure:"wrappedNativeSymbol" default:"WETH"`
	SwapRouter          string           `mapstructure:"swapRouter"`
	Tokens              []RawTokenConfig `mapstructure:"tokens"`
}

type RawConfig struct {
	Quoter RawQuoterConfig  `mapstructure:"quoter"`
	Chains []RawChainConfig `mapstructure:"chains"`
}

func (c *RawConfig) Validate() error {
	for _, chain := range c.Chains {
		if chain.Id == nil {
			return fmt.Errorf("required field chain.Id empty for chain %s", chain.Name)
		}
		if chain.SwapRouter == "" {
			return fmt.Errorf("required field chain.SwapRouter empty for chain %d", *chain.Id)
		}
		if !common.IsHexAddress(chain.SwapRouter) {
			return fmt.Errorf("invalid swap router address %s for chain %d", chain.SwapRouter, *chain.Id)
		}

		for _, token := range chain.Tokens {
			if token.Symbol == "" {
				return fmt.Errorf("token without symbol on chain %d", *chain.Id)
			}
			if !common.IsHexAddress(token.Address) {
				return fmt.Errorf("invalid address %s for token %s on chain %d", token.Address, token.Symbol, *chain.Id)
			}
		}
	}

	return nil
}

type ChainConfig struct {
	Name       string
	Id         uint64
	Native     tokens.NativeCurrency
	SwapRouter common.Address
	Tokens     map[string]tokens.TokenInfo
}

type QuoterConfig struct {
	RouterURL         string
	APIKey            string
	SlippageTolerance uint64
	Deadline          uint64
	NativeInputOnly   bool

	LogLevel string
	Address  string

	PriceURL    string
	PriceAPIKey string
}

type Config struct {
	Quoter QuoterConfig
	Chains map[uint64]ChainConfig
}

// quoterEnvKeys are the settings that may come from the environment.
// Each maps to a QUOTER_* variable through the key replacer, e.g.
// quoter.apiKey -> QUOTER_APIKEY. Chain configuration is file-only.
var quoterEnvKeys = []string{
	"quoter.routerUrl",
	"quoter.apiKey",
	"quoter.slippageTolerance",
	"quoter.deadline",
	"quoter.nativeInputOnly",
	"quoter.logLevel",
	"quoter.address",
	"quoter.priceUrl",
	"quoter.priceApiKey",
}

// LoadConfig reads configuration from the given file, with QUOTER_*
// environment variables taking precedence over file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range quoterEnvKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw RawConfig
	// weakly typed so string-valued environment overrides decode into
	// numeric and boolean fields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, err
	}

	return NewConfig(&raw)
}

// NewConfig decodes and validates a raw configuration.
func NewConfig(raw *RawConfig) (*Config, error) {
	if err := defaults.Set(raw); err != nil {
		return nil, err
	}

	if err := raw.Validate(); err != nil {
		return nil, err
	}

	chains := make(map[uint64]ChainConfig)
	for _, rc := range raw.Chains {
		chainTokens := make(map[string]tokens.TokenInfo)
		for _, rt := range rc.Tokens {
			chainTokens[rt.Symbol] = tokens.TokenInfo{
				ChainID:  *rc.Id,
				Address:  common.HexToAddress(rt.Address),
				Symbol:   rt.Symbol,
				Name:     rt.Name,
				Decimals: rt.Decimals,
				LogoURI:  rt.LogoURI,
			}
		}

		chains[*rc.Id] = ChainConfig{
			Name: rc.Name,
			Id:   *rc.Id,
			Native: tokens.NativeCurrency{
				Symbol:        rc.NativeSymbol,
				WrappedSymbol: rc.WrappedNativeSymbol,
				Decimals:      18,
			},
			SwapRouter: common.HexToAddress(rc.SwapRouter),
			Tokens:     chainTokens,
		}
	}

	return &Config{
		Quoter: QuoterConfig(raw.Quoter),
		Chains: chains,
	}, nil
}

func (c *Config) SupportedChains() []uint64 {
	ids := make([]uint64, 0, len(c.Chains))
	for id := range c.Chains {
		ids = append(ids, id)
	}
	return ids
}

func (c *Config) NativeCurrencies() tokens.NativeCurrencies {
	natives := make(tokens.NativeCurrencies)
	for id, chain := range c.Chains {
		natives[id] = chain.Native
	}
	return natives
}

func (c *Config) Routers() map[uint64]common.Address {
	routers := make(map[uint64]common.Address)
	for id, chain := range c.Chains {
		routers[id] = chain.SwapRouter
	}
	return routers
}

func (c *Config) TokenStore() *tokens.Store {
	store := make(map[uint64]map[string]tokens.TokenInfo)
	for id, chain := range c.Chains {
		store[id] = chain.Tokens
	}
	return tokens.NewStore(store)
}

// RouterAPIConfig assembles the routing API client configuration.
func (c *Config) RouterAPIConfig() router.Config {
	return router.Config{
		BaseURL:          c.Quoter.RouterURL,
		APIKey:           c.Quoter.APIKey,
		SupportedChains:  c.SupportedChains(),
		NativeCurrencies: c.NativeCurrencies(),
		Routers:          c.Routers(),
		NativeInputOnly:  c.Quoter.NativeInputOnly,
		DefaultOptions: router.RouteOptions{
			SlippageTolerance: c.Quoter.SlippageTolerance,
			Deadline:          c.Quoter.Deadline,
		},
	}
}
