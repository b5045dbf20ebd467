package router

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

// nativeDecimals is the fixed-point scale the routing API expects amounts
// in, matching the native currency convention.
const nativeDecimals = 18

// quoteURL builds the canonical quote query. Parameter order is fixed so
// identical inputs always produce a byte-identical URL. The optional block
// is appended only for full route requests.
func (a *API) quoteURL(
	tokenIn, tokenOut tokens.TokenInfo,
	amount decimal.Decimal,
	tradeType TradeType,
	opts *RouteOptions,
	recipient string,
) string {
	resolved := a.cfg.NativeCurrencies.ResolveWrapped(tokenIn)
	tokenInAddress := resolved.Address.Hex()
	if a.cfg.NativeCurrencies.IsNative(resolved) {
		tokenInAddress = resolved.Symbol
	}

	url := fmt.Sprintf(
		"%s/quote?tokenInAddress=%s&tokenInChainId=%d&tokenOutAddress=%s&tokenOutChainId=%d&amount=%s&type=%s",
		a.cfg.BaseURL,
		tokenInAddress,
		tokenIn.ChainID,
		tokenOut.Address.Hex(),
		tokenOut.ChainID,
		toSmallestUnit(amount),
		tradeType,
	)

	if opts != nil {
		url += fmt.Sprintf(
			"&slippageTolerance=%d&deadline=%d&recipient=%s",
			opts.SlippageTolerance,
			opts.Deadline,
			recipient,
		)
	}

	return url
}

// toSmallestUnit scales a human-readable decimal amount to an 18-decimal
// base-10 integer string. Fractional digits beyond the scale are dropped,
// never rounded up; the output is never in scientific notation.
func toSmallestUnit(amount decimal.Decimal) string {
	return amount.Shift(nativeDecimals).Truncate(0).BigInt().String()
}
