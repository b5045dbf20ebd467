package router

import (
	"fmt"
	"math/big"
)

// Assemble turns a fully routed response into a transaction descriptor
// targeting the chain's swap router contract. A response without method
// parameters fails with ErrMinimumSlippageDeadline - the HTTP call
// succeeded, but the requested slippage tolerance or deadline left no
// submittable route.
func (a *API) Assemble(chainID uint64, route *RouteDetails) (*SwapParams, error) {
	if route == nil || !route.Submittable() {
		return nil, ErrMinimumSlippageDeadline
	}

	to, ok := a.cfg.Routers[chainID]
	if !ok {
		return nil, &UnsupportedNetworkError{ChainID: chainID}
	}

	// value is hex encoded ("0x00"), base 0 also covers decimal strings
	value, ok := new(big.Int).SetString(route.MethodParameters.Value, 0)
	if !ok {
		return nil, fmt.Errorf("failed to parse transaction value from %q", route.MethodParameters.Value)
	}

	if route.GasPriceWei == nil || route.GasPriceWei.Int == nil {
		return nil, fmt.Errorf("route is missing gasPriceWei")
	}

	return &SwapParams{
		To:       to,
		Data:     route.MethodParameters.Calldata,
		Value:    value,
		GasPrice: new(big.Int).Set(route.GasPriceWei.Int),
	}, nil
}
