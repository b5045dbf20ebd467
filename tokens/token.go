package tokens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenInfo describes a single ERC20 token on a specific chain. Records
// are supplied by the token metadata collaborator and are immutable once
// constructed. Identity is the (ChainID, Address) pair.
type TokenInfo struct {
	ChainID       uint64
	Address       common.Address
	Symbol        string
	Name          string
	Decimals      uint8
	LogoURI       string
	WrappedNative common.Address
}

type Store struct {
	Tokens map[uint64]map[string]TokenInfo
}

func NewStore(tokens map[uint64]map[string]TokenInfo) *Store {
	return &Store{
		Tokens: tokens,
	}
}

func (s *Store) BySymbol(chainID uint64, symbol string) (TokenInfo, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenInfo{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	t, ok := tokens[symbol]
	if !ok {
		return TokenInfo{}, fmt.Errorf("no token %s on chain %d", symbol, chainID)
	}

	return t, nil
}

func (s *Store) ByAddress(chainID uint64, address common.Address) (TokenInfo, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenInfo{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for _, t := range tokens {
		if t.Address == address {
			return t, nil
		}
	}

	return TokenInfo{}, fmt.Errorf("no token with address %s on chain %d", address.Hex(), chainID)
}
