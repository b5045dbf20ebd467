package ens

import (
	"context"

	"github.com/sprintertech/sprinter-quoter/tokens"
)

// RPCClient issues generic JSON-RPC requests against the wallet provider.
type RPCClient interface {
	Request(ctx context.Context, method string, params any) (bool, error)
}

type WatchAssetOptions struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Image    string `json:"image"`
}

type WatchAssetParams struct {
	Type    string            `json:"type"`
	Options WatchAssetOptions `json:"options"`
}

// WatchAsset asks the wallet to track an ERC20 token. Returns whether the
// user accepted.
func WatchAsset(ctx context.Context, client RPCClient, token tokens.TokenInfo) (bool, error) {
	image := ""
	if token.LogoURI != "" {
		image = URIToHTTP(token.LogoURI)[0]
	}

	return client.Request(ctx, "wallet_watchAsset", WatchAssetParams{
		Type: "ERC20",
		Options: WatchAssetOptions{
			Address:  token.Address.Hex(),
			Symbol:   token.Symbol,
			Decimals: token.Decimals,
			Image:    image,
		},
	})
}
