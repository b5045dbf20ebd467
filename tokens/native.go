package tokens

// NativeCurrency describes the base asset of a chain and the symbol of
// its wrapped ERC20 representation.
type NativeCurrency struct {
	Symbol        string
	WrappedSymbol string
	Decimals      uint8
}

// NativeCurrencies maps chain IDs to their configured native currency.
type NativeCurrencies map[uint64]NativeCurrency

// ResolveWrapped rewrites the symbol of a wrapped native token (e.g. WETH)
// to the bare native symbol (e.g. ETH). The routing API accepts the native
// symbol as an address sentinel, so resolution has to happen before address
// selection. All other fields are left untouched and already-native tokens
// pass through unchanged, making the operation idempotent.
func (n NativeCurrencies) ResolveWrapped(token TokenInfo) TokenInfo {
	native, ok := n[token.ChainID]
	if !ok {
		return token
	}

	if token.Symbol == native.WrappedSymbol {
		token.Symbol = native.Symbol
	}

	return token
}

// IsNative reports whether the token, after wrapped-native resolution,
// is the configured native currency of its chain. Chains without a
// configured native currency never match.
func (n NativeCurrencies) IsNative(token TokenInfo) bool {
	native, ok := n[token.ChainID]
	if !ok {
		return false
	}

	return n.ResolveWrapped(token).Symbol == native.Symbol
}
