package resident

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/health-indicators/internal/repository"
)

// Pool memoizes resident ids per barangay so a barangay repeated across many
// input rows is looked up once.
type Pool struct {
	repo  repository.ResidentRepository
	cache *cache.Cache
}

func NewPool(repo repository.ResidentRepository, ttl time.Duration) *Pool {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Pool{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// ResidentIDs returns the residents of barangay. An empty result is cached too.
func (p *Pool) ResidentIDs(ctx context.Context, barangay string) ([]uuid.UUID, error) {
	if cached, found := p.cache.Get(barangay); found {
		return cached.([]uuid.UUID), nil
	}

	ids, err := p.repo.ResidentIDs(ctx, barangay)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve resident pool: %w", err)
	}

	p.cache.Set(barangay, ids, cache.DefaultExpiration)
	return ids, nil
}
