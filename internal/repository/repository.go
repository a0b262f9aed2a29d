package repository

import (
	"context"

	"github.com/bookhive/lending-service/internal/model"
)

// Store persists snapshots of the three aggregates. Each service commits its
// whole collection per mutation; the store has no partial-update contract.
type Store interface {
	LoadBooks(ctx context.Context) ([]model.Book, error)
	SaveBooks(ctx context.Context, books []model.Book) error
	LoadUsers(ctx context.Context) ([]model.User, error)
	SaveUsers(ctx context.Context, users []model.User) error
	LoadRecords(ctx context.Context) ([]model.BorrowingRecord, error)
	SaveRecords(ctx context.Context, records []model.BorrowingRecord) error
}
