package ens

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Provider is the wallet/provider collaborator used for ENS lookups. The
// handle is passed explicitly to every function instead of being held in
// ambient state.
type Provider interface {
	ResolveName(ctx context.Context, name string) (common.Address, error)
	LookupAddress(ctx context.Context, address common.Address) (string, error)
	Avatar(ctx context.Context, nameOrAddress string) (string, error)
}

// AddressFromName resolves an ENS name to an address.
func AddressFromName(ctx context.Context, provider Provider, name string) (common.Address, error) {
	if name == "" {
		return common.Address{}, fmt.Errorf("name is required")
	}

	return provider.ResolveName(ctx, name)
}

// NameFromAddress reverse-resolves an address to its ENS name.
func NameFromAddress(ctx context.Context, provider Provider, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%s is not a valid address", address)
	}

	return provider.LookupAddress(ctx, common.HexToAddress(address))
}

// AvatarURL looks up an avatar for the first of the given names or
// addresses that has one and returns it as a fetchable URL. Lookup
// failures degrade to an empty string; avatars are decoration, not data.
func AvatarURL(ctx context.Context, provider Provider, nameOrAddresses []string) string {
	for _, ref := range nameOrAddresses {
		if ref == "" {
			continue
		}

		avatar, err := provider.Avatar(ctx, ref)
		if err != nil || avatar == "" {
			continue
		}

		return URIToHTTP(avatar)[0]
	}

	return ""
}
