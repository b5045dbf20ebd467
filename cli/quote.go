package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-quoter/price"
	"github.com/sprintertech/sprinter-quoter/protocol/router"
)

var (
	chainID   uint64
	tokenIn   string
	tokenOut  string
	amount    string
	tradeType string
)

func bindQuoteFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&chainID, "chain-id", 1, "chain to quote on")
	cmd.Flags().StringVar(&tokenIn, "token-in", "", "input token symbol")
	cmd.Flags().StringVar(&tokenOut, "token-out", "", "output token symbol")
	cmd.Flags().StringVar(&amount, "amount", "", "human readable input amount")
	cmd.Flags().StringVar(&tradeType, "type", string(router.ExactIn), "trade direction (exactIn or exactOut)")
	_ = cmd.MarkFlagRequired("token-in")
	_ = cmd.MarkFlagRequired("token-out")
	_ = cmd.MarkFlagRequired("amount")
}

var quoteCMD = &cobra.Command{
	Use:   "quote",
	Short: "Fetch a price quote without a submittable route",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, api, store, err := loadPipeline()
		if err != nil {
			return err
		}

		in, err := store.BySymbol(chainID, tokenIn)
		if err != nil {
			return err
		}
		out, err := store.BySymbol(chainID, tokenOut)
		if err != nil {
			return err
		}

		inputAmount, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		quote, err := api.Quote(cmd.Context(), in, out, inputAmount, router.TradeType(tradeType))
		if err != nil {
			return err
		}

		printJSON(quote)

		if cfg.Quoter.PriceAPIKey != "" {
			priceAPI := price.NewCoinmarketcapAPI(cfg.Quoter.PriceURL, cfg.Quoter.PriceAPIKey)
			usd, err := priceAPI.TokenPrice(cmd.Context(), out.Symbol)
			if err != nil {
				log.Warn().Msgf("Failed fetching USD price for %s: %s", out.Symbol, err)
			} else {
				fmt.Printf("1 %s = %.2f USD\n", out.Symbol, usd)
			}
		}

		return nil
	},
}

func init() {
	bindQuoteFlags(quoteCMD)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Err(err).Msg("Failed to encode output")
		return
	}
	fmt.Println(string(out))
}
