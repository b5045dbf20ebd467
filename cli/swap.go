package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-quoter/protocol/router"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

var (
	recipient string
	balance   string
	slippage  uint64
	deadline  uint64
)

func bindRouteFlags(cmd *cobra.Command) {
	bindQuoteFlags(cmd)
	cmd.Flags().StringVar(&recipient, "recipient", "", "address receiving the output tokens")
	cmd.Flags().StringVar(&balance, "balance", "", "current input token balance")
	cmd.Flags().Uint64Var(&slippage, "slippage", 0, "slippage tolerance, 0 uses the configured default")
	cmd.Flags().Uint64Var(&deadline, "deadline", 0, "deadline in seconds, 0 uses the configured default")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("balance")
}

func routeInputs(store *tokens.Store) (tokens.TokenInfo, tokens.TokenInfo, decimal.Decimal, decimal.Decimal, *router.RouteOptions, error) {
	var opts *router.RouteOptions
	if slippage != 0 || deadline != 0 {
		opts = &router.RouteOptions{
			SlippageTolerance: slippage,
			Deadline:          deadline,
		}
	}

	in, err := store.BySymbol(chainID, tokenIn)
	if err != nil {
		return tokens.TokenInfo{}, tokens.TokenInfo{}, decimal.Decimal{}, decimal.Decimal{}, nil, err
	}
	out, err := store.BySymbol(chainID, tokenOut)
	if err != nil {
		return tokens.TokenInfo{}, tokens.TokenInfo{}, decimal.Decimal{}, decimal.Decimal{}, nil, err
	}

	inputAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return tokens.TokenInfo{}, tokens.TokenInfo{}, decimal.Decimal{}, decimal.Decimal{}, nil, fmt.Errorf("invalid amount: %w", err)
	}
	inputBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return tokens.TokenInfo{}, tokens.TokenInfo{}, decimal.Decimal{}, decimal.Decimal{}, nil, fmt.Errorf("invalid balance: %w", err)
	}

	return in, out, inputAmount, inputBalance, opts, nil
}

var routeCMD = &cobra.Command{
	Use:   "route",
	Short: "Fetch a quote with submittable method parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, store, err := loadPipeline()
		if err != nil {
			return err
		}

		in, out, inputAmount, inputBalance, opts, err := routeInputs(store)
		if err != nil {
			return err
		}

		route, err := api.Route(cmd.Context(), in, out, inputAmount, inputBalance, recipient, router.TradeType(tradeType), opts)
		if err != nil {
			return err
		}

		printJSON(route)
		return nil
	},
}

var swapCMD = &cobra.Command{
	Use:   "swap",
	Short: "Assemble a swap transaction payload for signing",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, store, err := loadPipeline()
		if err != nil {
			return err
		}

		in, out, inputAmount, inputBalance, opts, err := routeInputs(store)
		if err != nil {
			return err
		}

		params, err := api.SwapParams(cmd.Context(), in, out, inputAmount, inputBalance, recipient, router.TradeType(tradeType), opts)
		if err != nil {
			return err
		}

		printJSON(map[string]string{
			"to":       params.To.Hex(),
			"data":     params.Data,
			"value":    params.Value.String(),
			"gasPrice": params.GasPrice.String(),
		})
		return nil
	},
}

func init() {
	bindRouteFlags(routeCMD)
	bindRouteFlags(swapCMD)
}
