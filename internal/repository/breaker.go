package repository

import (
	"context"

	"github.com/bookhive/lending-service/internal/model"
	cb "github.com/bookhive/lending-service/pkg/circuit_breaker"
)

// BreakerStore guards snapshot commits with a circuit breaker. Commits are
// best effort, so once the store is down there is no point hammering it on
// every mutation; reads at startup bypass the breaker.
type BreakerStore struct {
	Store
	breaker cb.CircuitBreaker
}

func NewBreakerStore(store Store, breaker cb.CircuitBreaker) *BreakerStore {
	return &BreakerStore{
		Store:   store,
		breaker: breaker,
	}
}

func (b *BreakerStore) SaveBooks(ctx context.Context, books []model.Book) error {
	return b.breaker.Call(func() error {
		return b.Store.SaveBooks(ctx, books)
	})
}

func (b *BreakerStore) SaveUsers(ctx context.Context, users []model.User) error {
	return b.breaker.Call(func() error {
		return b.Store.SaveUsers(ctx, users)
	})
}

func (b *BreakerStore) SaveRecords(ctx context.Context, records []model.BorrowingRecord) error {
	return b.breaker.Call(func() error {
		return b.Store.SaveRecords(ctx, records)
	})
}
