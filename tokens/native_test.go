package tokens_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

var natives = tokens.NativeCurrencies{
	1: {Symbol: "ETH", WrappedSymbol: "WETH", Decimals: 18},
	4: {Symbol: "ETH", WrappedSymbol: "WETH", Decimals: 18},
}

var weth = tokens.TokenInfo{
	ChainID:  1,
	Address:  common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
	Symbol:   "WETH",
	Name:     "Wrapped Ether",
	Decimals: 18,
}

var dai = tokens.TokenInfo{
	ChainID:  1,
	Address:  common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
	Symbol:   "DAI",
	Name:     "Dai Stablecoin",
	Decimals: 18,
}

func Test_ResolveWrapped(t *testing.T) {
	tests := []struct {
		name       string
		token      tokens.TokenInfo
		wantSymbol string
	}{
		{
			name:       "rewrites wrapped native symbol",
			token:      weth,
			wantSymbol: "ETH",
		},
		{
			name:       "leaves other tokens untouched",
			token:      dai,
			wantSymbol: "DAI",
		},
		{
			name: "leaves tokens on unconfigured chains untouched",
			token: tokens.TokenInfo{
				ChainID: 137,
				Symbol:  "WETH",
			},
			wantSymbol: "WETH",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := natives.ResolveWrapped(tc.token)
			if got.Symbol != tc.wantSymbol {
				t.Errorf("expected symbol %s, got %s", tc.wantSymbol, got.Symbol)
			}
			if got.Address != tc.token.Address {
				t.Errorf("address changed during resolution")
			}
		})
	}
}

func Test_ResolveWrapped_Idempotent(t *testing.T) {
	once := natives.ResolveWrapped(weth)
	twice := natives.ResolveWrapped(once)

	if once != twice {
		t.Errorf("expected %+v, got %+v", once, twice)
	}
}

func Test_IsNative(t *testing.T) {
	tests := []struct {
		name  string
		token tokens.TokenInfo
		want  bool
	}{
		{
			name:  "wrapped native counts as native",
			token: weth,
			want:  true,
		},
		{
			name:  "bare native symbol counts as native",
			token: tokens.TokenInfo{ChainID: 1, Symbol: "ETH"},
			want:  true,
		},
		{
			name:  "erc20 is not native",
			token: dai,
			want:  false,
		},
		{
			name:  "unconfigured chain is never native",
			token: tokens.TokenInfo{ChainID: 137, Symbol: "ETH"},
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := natives.IsNative(tc.token); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
