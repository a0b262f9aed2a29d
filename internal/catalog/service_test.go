package catalog_test

import (
	"context"
	"testing"

	"github.com/bookhive/lending-service/internal/catalog"
	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*catalog.Service, *repository.FileStore) {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir(), zap.NewExample())
	require.NoError(t, err)
	return catalog.NewService(store, nil, zap.NewExample()), store
}

func testBook(isbn string) model.Book {
	return model.Book{
		ISBN:           isbn,
		Title:          "Clean Architecture",
		Author:         "Robert C. Martin",
		Publisher:      "Prentice Hall",
		PageCount:      432,
		Category:       "Software",
		TotalStock:     3,
		AvailableStock: 3,
	}
}

func TestService_AddBook(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	added, err := svc.AddBook(ctx, testBook("978-0134494166"))
	require.NoError(t, err)
	require.False(t, added.DateAdded.IsZero())

	// same ISBN is a conflict, case-insensitively
	_, err = svc.AddBook(ctx, testBook("978-0134494166"))
	require.ErrorIs(t, err, errs.ErrConflict)

	// available above total is rejected
	bad := testBook("978-1")
	bad.AvailableStock = 5
	_, err = svc.AddBook(ctx, bad)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	// the snapshot on disk matches memory
	books, err := store.LoadBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "978-0134494166", books[0].ISBN)
}

func TestService_FindBookByISBN(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddBook(ctx, testBook("ABC-123"))
	require.NoError(t, err)

	got, ok := svc.FindBookByISBN(ctx, "abc-123")
	require.True(t, ok)
	require.Equal(t, "ABC-123", got.ISBN)

	_, ok = svc.FindBookByISBN(ctx, "missing")
	require.False(t, ok)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	b1 := testBook("1")
	b1.Title = "The Pragmatic Programmer"
	b1.Author = "Andrew Hunt"
	b2 := testBook("2")
	b2.Title = "Programming Pearls"
	b2.Author = "Jon Bentley"
	for _, b := range []model.Book{b1, b2} {
		_, err := svc.AddBook(ctx, b)
		require.NoError(t, err)
	}

	require.Len(t, svc.FindBooksByTitle(ctx, "program"), 2)
	require.Len(t, svc.FindBooksByTitle(ctx, "pearls"), 1)
	require.Empty(t, svc.FindBooksByTitle(ctx, "  "))
	require.Len(t, svc.FindBooksByAuthor(ctx, "bentley"), 1)
	require.Empty(t, svc.FindBooksByAuthor(ctx, "knuth"))
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	added, err := svc.AddBook(ctx, testBook("1"))
	require.NoError(t, err)

	upd := added
	upd.Title = "Clean Architecture, 2nd"
	upd.TotalStock = 2
	upd.AvailableStock = 9 // clamped to the new total
	require.NoError(t, svc.UpdateBook(ctx, upd))

	got, ok := svc.FindBookByISBN(ctx, "1")
	require.True(t, ok)
	require.Equal(t, "Clean Architecture, 2nd", got.Title)
	require.Equal(t, 2, got.AvailableStock)
	require.Equal(t, added.DateAdded, got.DateAdded)

	require.ErrorIs(t, svc.UpdateBook(ctx, testBook("missing")), errs.ErrNotFound)
}

func TestService_DeleteBookByISBN(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddBook(ctx, testBook("1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBookByISBN(ctx, "1"))
	require.Empty(t, svc.ListBooks(ctx))
	require.ErrorIs(t, svc.DeleteBookByISBN(ctx, "1"), errs.ErrNotFound)
}
