package tokens

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TOKEN_LIST_TTL = time.Minute * 30
)

// Source supplies token metadata for a chain. Implementations are external
// collaborators (token list endpoints, static configuration).
type Source interface {
	Tokens(ctx context.Context, chainID uint64) ([]TokenInfo, error)
}

// CachedSource caches token lists per chain with a TTL to avoid refetching
// metadata on every quote.
type CachedSource struct {
	source Source
	cache  *ttlcache.Cache[uint64, []TokenInfo]
}

func NewCachedSource(source Source) *CachedSource {
	cache := ttlcache.New(
		ttlcache.WithTTL[uint64, []TokenInfo](TOKEN_LIST_TTL),
	)

	s := &CachedSource{
		source: source,
		cache:  cache,
	}

	go cache.Start()
	return s
}

func (s *CachedSource) Tokens(ctx context.Context, chainID uint64) ([]TokenInfo, error) {
	item := s.cache.Get(chainID)
	if item != nil {
		return item.Value(), nil
	}

	tokens, err := s.source.Tokens(ctx, chainID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(chainID, tokens, ttlcache.DefaultTTL)
	return tokens, nil
}

func (s *CachedSource) Stop() {
	s.cache.Stop()
}
