package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStore_EmptyOnFirstStart(t *testing.T) {
	ctx := context.Background()
	store, err := repository.NewFileStore(t.TempDir(), zap.NewExample())
	require.NoError(t, err)

	books, err := store.LoadBooks(ctx)
	require.NoError(t, err)
	require.Empty(t, books)

	users, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	records, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := repository.NewFileStore(t.TempDir(), zap.NewExample())
	require.NoError(t, err)

	returned := model.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	records := []model.BorrowingRecord{
		{
			RecordID:   "rec-1",
			BookISBN:   "111",
			UserID:     "user-1",
			BorrowDate: model.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			DueDate:    model.NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			Status:     model.StatusBorrowed,
		},
		{
			RecordID:   "rec-2",
			BookISBN:   "222",
			UserID:     "user-2",
			BorrowDate: model.NewDate(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
			DueDate:    model.NewDate(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)),
			ReturnDate: &returned,
			Status:     model.StatusReturned,
		},
	}
	require.NoError(t, store.SaveRecords(ctx, records))

	loaded, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "rec-1", loaded[0].RecordID)
	require.Equal(t, "2024-03-15", loaded[0].DueDate.Format(time.DateOnly))
	require.Nil(t, loaded[0].ReturnDate)
	require.NotNil(t, loaded[1].ReturnDate)
	require.Equal(t, "2024-03-10", loaded[1].ReturnDate.Format(time.DateOnly))

	// a later snapshot fully replaces the previous one
	require.NoError(t, store.SaveRecords(ctx, records[:1]))
	loaded, err = store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}

func TestFileStore_BooksAndUsers(t *testing.T) {
	ctx := context.Background()
	store, err := repository.NewFileStore(t.TempDir(), zap.NewExample())
	require.NoError(t, err)

	books := []model.Book{{
		ISBN:           "111",
		Title:          "SICP",
		Author:         "Abelson",
		PageCount:      657,
		TotalStock:     2,
		AvailableStock: 1,
		DateAdded:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	require.NoError(t, store.SaveBooks(ctx, books))

	gotBooks, err := store.LoadBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, books, gotBooks)

	users := []model.User{{
		UserID:           "user-1",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@x.com",
		RegistrationDate: model.NewDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		Status:           model.MembershipActive,
	}}
	require.NoError(t, store.SaveUsers(ctx, users))

	gotUsers, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, users, gotUsers)
}
