package ens_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-quoter/ens"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

type stubProvider struct {
	names   map[string]common.Address
	reverse map[common.Address]string
	avatars map[string]string
	err     error
}

func (p *stubProvider) ResolveName(ctx context.Context, name string) (common.Address, error) {
	if p.err != nil {
		return common.Address{}, p.err
	}
	return p.names[name], nil
}

func (p *stubProvider) LookupAddress(ctx context.Context, address common.Address) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.reverse[address], nil
}

func (p *stubProvider) Avatar(ctx context.Context, nameOrAddress string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.avatars[nameOrAddress], nil
}

var wallet = common.HexToAddress("0xC54070dA79E7E3e2c95D3a91fe98A42000e65a48")

func Test_AddressFromName(t *testing.T) {
	provider := &stubProvider{
		names: map[string]common.Address{"vitalik.eth": wallet},
	}

	got, err := ens.AddressFromName(context.Background(), provider, "vitalik.eth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != wallet {
		t.Errorf("expected %s, got %s", wallet.Hex(), got.Hex())
	}

	_, err = ens.AddressFromName(context.Background(), provider, "")
	if err == nil {
		t.Error("expected error for empty name")
	}
}

func Test_NameFromAddress(t *testing.T) {
	provider := &stubProvider{
		reverse: map[common.Address]string{wallet: "vitalik.eth"},
	}

	got, err := ens.NameFromAddress(context.Background(), provider, wallet.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "vitalik.eth" {
		t.Errorf("expected vitalik.eth, got %s", got)
	}

	_, err = ens.NameFromAddress(context.Background(), provider, "not-an-address")
	if err == nil {
		t.Error("expected error for malformed address")
	}
}

func Test_AvatarURL(t *testing.T) {
	provider := &stubProvider{
		avatars: map[string]string{"vitalik.eth": "ipfs://QmXttGpZrECX5qCyXbBQiqgQNytVGeZW5Anewvh2jc4psg"},
	}

	got := ens.AvatarURL(context.Background(), provider, []string{"", "vitalik.eth"})
	want := "https://cloudflare-ipfs.com/ipfs/QmXttGpZrECX5qCyXbBQiqgQNytVGeZW5Anewvh2jc4psg/"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func Test_AvatarURL_DegradesOnFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("resolver unavailable")}

	if got := ens.AvatarURL(context.Background(), provider, []string{"vitalik.eth"}); got != "" {
		t.Errorf("expected empty avatar, got %s", got)
	}
}

func Test_URIToHTTP(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want []string
	}{
		{
			name: "https passes through",
			uri:  "https://example.com/logo.png",
			want: []string{"https://example.com/logo.png"},
		},
		{
			name: "http upgraded with fallback",
			uri:  "http://example.com/logo.png",
			want: []string{"https://example.com/logo.png", "http://example.com/logo.png"},
		},
		{
			name: "data passes through",
			uri:  "data:image/png;base64,xyz",
			want: []string{"data:image/png;base64,xyz"},
		},
		{
			name: "ipfs goes through gateways",
			uri:  "ipfs://QmXttGpZrECX5qCyXbBQiqgQNytVGeZW5Anewvh2jc4psg",
			want: []string{
				"https://cloudflare-ipfs.com/ipfs/QmXttGpZrECX5qCyXbBQiqgQNytVGeZW5Anewvh2jc4psg/",
				"https://ipfs.io/ipfs/QmXttGpZrECX5qCyXbBQiqgQNytVGeZW5Anewvh2jc4psg/",
			},
		},
		{
			name: "ipns goes through gateways",
			uri:  "ipns://app.uniswap.org",
			want: []string{
				"https://cloudflare-ipfs.com/ipns/app.uniswap.org/",
				"https://ipfs.io/ipns/app.uniswap.org/",
			},
		},
		{
			name: "arweave gateway",
			uri:  "ar://abc123",
			want: []string{"https://arweave.net/abc123"},
		},
		{
			name: "unknown scheme passes through",
			uri:  "ftp://example.com/logo.png",
			want: []string{"ftp://example.com/logo.png"},
		},
		{
			name: "scheme-only ar passes through",
			uri:  "ar",
			want: []string{"ar"},
		},
		{
			name: "scheme-only ipfs passes through",
			uri:  "ipfs",
			want: []string{"ipfs"},
		},
		{
			name: "scheme-only ipns passes through",
			uri:  "ipns",
			want: []string{"ipns"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ens.URIToHTTP(tc.uri)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

type stubRPC struct {
	method string
	params any
	accept bool
}

func (c *stubRPC) Request(ctx context.Context, method string, params any) (bool, error) {
	c.method = method
	c.params = params
	return c.accept, nil
}

func Test_WatchAsset(t *testing.T) {
	uni := tokens.TokenInfo{
		ChainID:  1,
		Address:  common.HexToAddress("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"),
		Symbol:   "UNI",
		Decimals: 18,
		LogoURI:  "http://example.com/uni.png",
	}
	client := &stubRPC{accept: true}

	accepted, err := ens.WatchAsset(context.Background(), client, uni)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !accepted {
		t.Error("expected watch request to be accepted")
	}
	if client.method != "wallet_watchAsset" {
		t.Errorf("unexpected method: %s", client.method)
	}

	params, ok := client.params.(ens.WatchAssetParams)
	if !ok {
		t.Fatalf("unexpected params type: %T", client.params)
	}
	if params.Type != "ERC20" {
		t.Errorf("unexpected asset type: %s", params.Type)
	}
	if params.Options.Image != "https://example.com/uni.png" {
		t.Errorf("unexpected image: %s", params.Options.Image)
	}
}
