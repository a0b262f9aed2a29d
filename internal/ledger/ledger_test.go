package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalog struct {
	books     map[string]model.Book
	updateErr error
}

func (f *fakeCatalog) FindBookByISBN(_ context.Context, isbn string) (model.Book, bool) {
	for k, b := range f.books {
		if strings.EqualFold(k, isbn) {
			return b, true
		}
	}
	return model.Book{}, false
}

func (f *fakeCatalog) UpdateBook(_ context.Context, book model.Book) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.books[book.ISBN] = book
	return nil
}

type fakeMembership struct {
	users map[string]model.User // keyed by email
}

func (f *fakeMembership) FindUserByEmail(_ context.Context, email string) (model.User, bool) {
	for k, u := range f.users {
		if strings.EqualFold(k, email) {
			return u, true
		}
	}
	return model.User{}, false
}

type fakeStore struct {
	saves   int
	saveErr error
}

func (f *fakeStore) SaveRecords(_ context.Context, _ []model.BorrowingRecord) error {
	f.saves++
	return f.saveErr
}

func newTestLedger(t *testing.T) (*Ledger, *fakeCatalog, *fakeStore) {
	t.Helper()
	cat := &fakeCatalog{books: map[string]model.Book{
		"111": {ISBN: "111", Title: "The Go Programming Language", TotalStock: 1, AvailableStock: 1},
		"222": {ISBN: "222", Title: "Designing Data-Intensive Applications", TotalStock: 3, AvailableStock: 2},
	}}
	mem := &fakeMembership{users: map[string]model.User{
		"u@x.com":  {UserID: "user-1", Email: "u@x.com"},
		"u2@x.com": {UserID: "user-2", Email: "u2@x.com"},
	}}
	store := &fakeStore{}
	return New(cat, mem, store, nil, zap.NewExample()), cat, store
}

func TestLedger_BorrowReturnLifecycle(t *testing.T) {
	ctx := context.Background()
	l, cat, store := newTestLedger(t)

	today := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return today }

	// borrow takes the last copy and sets the due date
	recordID, err := l.Borrow(ctx, "u@x.com", "111", 14)
	require.NoError(t, err)
	require.NotEmpty(t, recordID)
	require.Equal(t, 0, cat.books["111"].AvailableStock)
	require.Equal(t, 1, store.saves)

	records := l.AllRecords()
	require.Len(t, records, 1)
	require.Equal(t, recordID, records[0].RecordID)
	require.Equal(t, model.StatusBorrowed, records[0].Status)
	require.Equal(t, "2024-03-01", records[0].BorrowDate.Format(time.DateOnly))
	require.Equal(t, "2024-03-15", records[0].DueDate.Format(time.DateOnly))
	require.Nil(t, records[0].ReturnDate)

	// out of stock for the next member
	_, err = l.Borrow(ctx, "u2@x.com", "111", 14)
	require.ErrorIs(t, err, errs.ErrOutOfStock)

	// same member cannot double borrow even if stock existed
	_, err = l.Borrow(ctx, "u@x.com", "111", 7)
	require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)

	// return restores stock and closes the record
	returnedID, err := l.Return(ctx, "111", "u@x.com")
	require.NoError(t, err)
	require.Equal(t, recordID, returnedID)
	require.Equal(t, 1, cat.books["111"].AvailableStock)

	records = l.AllRecords()
	require.Equal(t, model.StatusReturned, records[0].Status)
	require.NotNil(t, records[0].ReturnDate)
	require.Equal(t, "2024-03-01", records[0].ReturnDate.Format(time.DateOnly))

	// no active record remains
	_, err = l.Return(ctx, "111", "u@x.com")
	require.ErrorIs(t, err, errs.ErrNoActiveLoan)
}

func TestLedger_BorrowValidation(t *testing.T) {
	ctx := context.Background()
	l, _, store := newTestLedger(t)

	tests := []struct {
		name     string
		email    string
		isbn     string
		loanDays int
		wantErr  error
	}{
		{name: "zero loan days", email: "u@x.com", isbn: "111", loanDays: 0, wantErr: errs.ErrInvalidInput},
		{name: "negative loan days", email: "u@x.com", isbn: "111", loanDays: -3, wantErr: errs.ErrInvalidInput},
		{name: "unknown user", email: "nobody@x.com", isbn: "111", loanDays: 7, wantErr: errs.ErrUserNotFound},
		{name: "unknown book", email: "u@x.com", isbn: "999", loanDays: 7, wantErr: errs.ErrBookNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Borrow(ctx, tt.email, tt.isbn, tt.loanDays)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// failed checks never mutate or commit anything
	require.Empty(t, l.AllRecords())
	require.Equal(t, 0, store.saves)
}

func TestLedger_ReturnUnknownUser(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.Return(context.Background(), "111", "nobody@x.com")
	require.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestLedger_ReturnISBNCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	l, cat, _ := newTestLedger(t)
	cat.books["abc-1"] = model.Book{ISBN: "abc-1", TotalStock: 1, AvailableStock: 1}

	_, err := l.Borrow(ctx, "u@x.com", "abc-1", 7)
	require.NoError(t, err)

	_, err = l.Return(ctx, "ABC-1", "u@x.com")
	require.NoError(t, err)
	require.Equal(t, 1, cat.books["abc-1"].AvailableStock)
}

func TestLedger_StockConservation(t *testing.T) {
	ctx := context.Background()
	l, cat, _ := newTestLedger(t)

	before := cat.books["222"].AvailableStock
	for i := 0; i < 3; i++ {
		_, err := l.Borrow(ctx, "u@x.com", "222", 7)
		require.NoError(t, err)
		require.Equal(t, before-1, cat.books["222"].AvailableStock)

		_, err = l.Return(ctx, "222", "u@x.com")
		require.NoError(t, err)
		require.Equal(t, before, cat.books["222"].AvailableStock)
	}

	// bound holds across every step
	b := cat.books["222"]
	require.GreaterOrEqual(t, b.AvailableStock, 0)
	require.LessOrEqual(t, b.AvailableStock, b.TotalStock)
}

func TestLedger_OverdueDerivedFromClock(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger(t)

	day0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return day0 }

	_, err := l.Borrow(ctx, "u@x.com", "111", 5)
	require.NoError(t, err)

	// not overdue on the due date itself
	l.now = func() time.Time { return day0.AddDate(0, 0, 5) }
	require.Empty(t, l.OverdueLoans())

	// strictly past the due date it appears, with no stored transition
	l.now = func() time.Time { return day0.AddDate(0, 0, 6) }
	overdue := l.OverdueLoans()
	require.Len(t, overdue, 1)
	require.Equal(t, model.StatusBorrowed, overdue[0].Status)

	// winding the clock back removes it again
	l.now = func() time.Time { return day0.AddDate(0, 0, 3) }
	require.Empty(t, l.OverdueLoans())

	// returning it clears the overdue set whatever the clock says
	l.now = func() time.Time { return day0.AddDate(0, 0, 10) }
	_, err = l.Return(ctx, "111", "u@x.com")
	require.NoError(t, err)
	require.Empty(t, l.OverdueLoans())
}

func TestLedger_ActiveLoansForUser(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger(t)

	_, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)
	_, err = l.Borrow(ctx, "u@x.com", "222", 7)
	require.NoError(t, err)
	_, err = l.Borrow(ctx, "u2@x.com", "222", 7)
	require.NoError(t, err)

	require.Len(t, l.ActiveLoansForUser("user-1"), 2)
	require.Len(t, l.ActiveLoansForUser("user-2"), 1)
	require.Empty(t, l.ActiveLoansForUser("user-3"))

	_, err = l.Return(ctx, "111", "u@x.com")
	require.NoError(t, err)
	require.Len(t, l.ActiveLoansForUser("user-1"), 1)
}

func TestLedger_IsBookOnLoan(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger(t)

	require.False(t, l.IsBookOnLoan("111"))

	_, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)
	require.True(t, l.IsBookOnLoan("111"))
	require.False(t, l.IsBookOnLoan("222"))

	_, err = l.Return(ctx, "111", "u@x.com")
	require.NoError(t, err)
	require.False(t, l.IsBookOnLoan("111"))
}

func TestLedger_QueriesReturnCopies(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger(t)

	_, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)

	records := l.AllRecords()
	records[0].Status = model.StatusReturned
	records[0].BookISBN = "mutated"

	fresh := l.AllRecords()
	require.Equal(t, model.StatusBorrowed, fresh[0].Status)
	require.Equal(t, "111", fresh[0].BookISBN)
}

func TestLedger_PersistenceFailuresAreBestEffort(t *testing.T) {
	ctx := context.Background()
	l, cat, store := newTestLedger(t)
	store.saveErr = errors.New("disk full")
	cat.updateErr = errors.New("disk full")

	// both commits fail yet the borrow succeeds in memory
	recordID, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)
	require.NotEmpty(t, recordID)
	require.Len(t, l.AllRecords(), 1)
}

func TestLedger_ReturnAfterBookDeleted(t *testing.T) {
	ctx := context.Background()
	l, cat, _ := newTestLedger(t)

	recordID, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)

	// book removed from the catalog while on loan
	delete(cat.books, "111")

	returnedID, err := l.Return(ctx, "111", "u@x.com")
	require.NoError(t, err)
	require.Equal(t, recordID, returnedID)

	records := l.AllRecords()
	require.Equal(t, model.StatusReturned, records[0].Status)
}

func TestLedger_RecordsSurviveAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	l, cat, store := newTestLedger(t)

	_, err := l.Borrow(ctx, "u@x.com", "111", 7)
	require.NoError(t, err)
	loaded := l.AllRecords()

	// a new ledger seeded with the previous records keeps enforcing the
	// one-active-loan invariant
	mem := &fakeMembership{users: map[string]model.User{
		"u@x.com": {UserID: "user-1", Email: "u@x.com"},
	}}
	l2 := New(cat, mem, store, loaded, zap.NewExample())
	cat.books["111"] = model.Book{ISBN: "111", TotalStock: 1, AvailableStock: 1}

	_, err = l2.Borrow(ctx, "u@x.com", "111", 7)
	require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)
}
