package router

import (
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-quoter/tokens"
	"golang.org/x/exp/slices"
)

// Validate runs the pre-flight checks on a swap request. The first failing
// check wins; checks after it are not evaluated. Amount and balance are
// optional - the sufficiency check only runs when both are present.
//
// Check order: native-input policy, network compatibility, network
// support, balance sufficiency.
func (a *API) Validate(tokenIn, tokenOut tokens.TokenInfo, amount, balance *decimal.Decimal) error {
	if a.cfg.NativeInputOnly && !a.cfg.NativeCurrencies.IsNative(tokenIn) {
		return &NativeInputOnlyError{Symbol: tokenIn.Symbol}
	}

	if tokenIn.ChainID != tokenOut.ChainID {
		return &IncompatibleNetworksError{
			SymbolIn:  tokenIn.Symbol,
			SymbolOut: tokenOut.Symbol,
		}
	}

	if !slices.Contains(a.cfg.SupportedChains, tokenIn.ChainID) {
		return &UnsupportedNetworkError{ChainID: tokenIn.ChainID}
	}

	if amount != nil && balance != nil && amount.GreaterThan(*balance) {
		return &InsufficientFundsError{Symbol: tokenIn.Symbol}
	}

	return nil
}
