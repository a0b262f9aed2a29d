package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Catalog is the book collaborator. It is the only capability the ledger
// consumes from the catalog side: resolve an ISBN and persist a stock change.
type Catalog interface {
	FindBookByISBN(ctx context.Context, isbn string) (model.Book, bool)
	UpdateBook(ctx context.Context, book model.Book) error
}

// Membership resolves members by unique email.
type Membership interface {
	FindUserByEmail(ctx context.Context, email string) (model.User, bool)
}

// RecordStore is the persistence commit for the ledger's own records. Commits
// are best effort: a failed commit is logged, never rolled back in memory.
type RecordStore interface {
	SaveRecords(ctx context.Context, records []model.BorrowingRecord) error
}

// Ledger owns the borrowing lifecycle. Records are held in memory in insertion
// order and never deleted; a single mutex serializes every check-then-mutate
// sequence so two borrows cannot both take the last copy.
type Ledger struct {
	mu         sync.Mutex
	records    []model.BorrowingRecord
	catalog    Catalog
	membership Membership
	store      RecordStore
	now        func() time.Time
	log        *zap.Logger
}

func New(catalog Catalog, membership Membership, store RecordStore, records []model.BorrowingRecord, log *zap.Logger) *Ledger {
	return &Ledger{
		records:    records,
		catalog:    catalog,
		membership: membership,
		store:      store,
		now:        time.Now,
		log:        log.Named("ledger"),
	}
}

// Borrow lends one copy of a book to the member identified by email.
// All checks pass before any state changes; the first failure wins.
func (l *Ledger) Borrow(ctx context.Context, userEmail, bookISBN string, loanDays int) (string, error) {
	if loanDays <= 0 {
		return "", errs.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.membership.FindUserByEmail(ctx, userEmail)
	if !ok {
		return "", errs.ErrUserNotFound
	}

	book, ok := l.catalog.FindBookByISBN(ctx, bookISBN)
	if !ok {
		return "", errs.ErrBookNotFound
	}
	if book.AvailableStock <= 0 {
		return "", errs.ErrOutOfStock
	}

	for i := range l.records {
		if l.records[i].UserID == user.UserID &&
			l.records[i].BookISBN == bookISBN &&
			l.records[i].Status == model.StatusBorrowed {
			return "", errs.ErrAlreadyBorrowed
		}
	}

	borrowDate := model.NewDate(l.now())
	record := model.BorrowingRecord{
		RecordID:   uuid.New().String(),
		BookISBN:   bookISBN,
		UserID:     user.UserID,
		BorrowDate: borrowDate,
		DueDate:    model.NewDate(borrowDate.AddDate(0, 0, loanDays)),
		ReturnDate: nil,
		Status:     model.StatusBorrowed,
	}
	l.records = append(l.records, record)

	book.DecreaseAvailable()
	if err := l.catalog.UpdateBook(ctx, book); err != nil {
		l.log.Warn("borrow: book stock commit failed", zap.String("isbn", bookISBN), zap.Error(err))
	}
	l.commit(ctx)

	l.log.Info("book borrowed",
		zap.String("recordId", record.RecordID),
		zap.String("isbn", bookISBN),
		zap.String("userId", user.UserID),
		zap.String("dueDate", record.DueDate.Format(time.DateOnly)),
	)
	return record.RecordID, nil
}

// Return closes the active loan for (book, user). ISBN matching is
// case-insensitive; the transition to RETURNED happens exactly once.
func (l *Ledger) Return(ctx context.Context, bookISBN, userEmail string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.membership.FindUserByEmail(ctx, userEmail)
	if !ok {
		return "", errs.ErrUserNotFound
	}

	var record *model.BorrowingRecord
	for i := range l.records {
		if strings.EqualFold(l.records[i].BookISBN, bookISBN) &&
			l.records[i].UserID == user.UserID &&
			l.records[i].Status == model.StatusBorrowed {
			record = &l.records[i]
			break
		}
	}
	if record == nil {
		return "", errs.ErrNoActiveLoan
	}

	returnDate := model.NewDate(l.now())
	record.ReturnDate = &returnDate
	record.Status = model.StatusReturned

	if book, ok := l.catalog.FindBookByISBN(ctx, bookISBN); ok {
		book.IncreaseAvailable()
		if err := l.catalog.UpdateBook(ctx, book); err != nil {
			l.log.Warn("return: book stock commit failed", zap.String("isbn", bookISBN), zap.Error(err))
		}
	} else {
		// The book was deleted while on loan. The record still closes; stock
		// has nothing left to restore.
		l.log.Warn("return: book missing from catalog, stock not adjusted",
			zap.String("isbn", bookISBN), zap.String("recordId", record.RecordID))
	}
	l.commit(ctx)

	l.log.Info("book returned",
		zap.String("recordId", record.RecordID),
		zap.String("isbn", bookISBN),
		zap.String("userId", user.UserID),
	)
	return record.RecordID, nil
}

// AllRecords returns every record in insertion order.
func (l *Ledger) AllRecords() []model.BorrowingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot(func(model.BorrowingRecord) bool { return true })
}

// ActiveLoansForUser returns the user's records still out.
func (l *Ledger) ActiveLoansForUser(userID string) []model.BorrowingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot(func(r model.BorrowingRecord) bool {
		return r.UserID == userID && r.Status == model.StatusBorrowed
	})
}

// OverdueLoans returns active records whose due date is strictly before today.
// Overdue is derived at call time, never stored, so the set follows the clock.
func (l *Ledger) OverdueLoans() []model.BorrowingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	today := model.NewDate(l.now())
	return l.snapshot(func(r model.BorrowingRecord) bool {
		return r.Status == model.StatusBorrowed && r.DueDate.Before(today)
	})
}

// IsBookOnLoan reports whether any copy of the book is currently out.
func (l *Ledger) IsBookOnLoan(isbn string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.records {
		if strings.EqualFold(l.records[i].BookISBN, isbn) && l.records[i].Status == model.StatusBorrowed {
			return true
		}
	}
	return false
}

// snapshot copies matching records so a caller mutating the result cannot
// touch ledger state. Callers must hold l.mu.
func (l *Ledger) snapshot(match func(model.BorrowingRecord) bool) []model.BorrowingRecord {
	out := make([]model.BorrowingRecord, 0, len(l.records))
	for i := range l.records {
		if !match(l.records[i]) {
			continue
		}
		r := l.records[i]
		if r.ReturnDate != nil {
			d := *r.ReturnDate
			r.ReturnDate = &d
		}
		out = append(out, r)
	}
	return out
}

func (l *Ledger) commit(ctx context.Context) {
	if err := l.store.SaveRecords(ctx, l.records); err != nil {
		l.log.Warn("ledger commit failed", zap.Error(err))
	}
}
