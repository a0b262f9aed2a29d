package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"go.uber.org/zap"
)

// BookStore is the persistence commit for the catalog snapshot.
type BookStore interface {
	SaveBooks(ctx context.Context, books []model.Book) error
}

// Service owns the book collection. Mutations rewrite the whole snapshot
// through the store; a failed commit is logged and the in-memory state stands.
type Service struct {
	mu    sync.Mutex
	books []model.Book
	store BookStore
	log   *zap.Logger
}

func NewService(store BookStore, books []model.Book, log *zap.Logger) *Service {
	return &Service{
		books: books,
		store: store,
		log:   log.Named("catalog"),
	}
}

func (s *Service) AddBook(ctx context.Context, book model.Book) (model.Book, error) {
	if book.AvailableStock > book.TotalStock {
		return model.Book{}, errs.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findLocked(book.ISBN); ok {
		return model.Book{}, errs.ErrConflict
	}

	book.DateAdded = time.Now()
	s.books = append(s.books, book)
	s.commit(ctx)

	s.log.Info("book added", zap.String("isbn", book.ISBN), zap.String("title", book.Title))
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) []model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}

// FindBookByISBN resolves an ISBN case-insensitively.
func (s *Service) FindBookByISBN(ctx context.Context, isbn string) (model.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.findLocked(isbn); ok {
		return s.books[i], true
	}
	return model.Book{}, false
}

func (s *Service) FindBooksByTitle(ctx context.Context, title string) []model.Book {
	return s.search(title, func(b model.Book) string { return b.Title })
}

func (s *Service) FindBooksByAuthor(ctx context.Context, author string) []model.Book {
	return s.search(author, func(b model.Book) string { return b.Author })
}

// UpdateBook replaces a book's mutable fields. ISBN and DateAdded never change;
// available stock is clamped into [0, totalStock] whatever the caller sent.
func (s *Service) UpdateBook(ctx context.Context, book model.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findLocked(book.ISBN)
	if !ok {
		return errs.ErrNotFound
	}

	existing := &s.books[i]
	existing.Title = book.Title
	existing.Author = book.Author
	existing.Publisher = book.Publisher
	existing.PageCount = book.PageCount
	existing.Category = book.Category
	existing.TotalStock = book.TotalStock
	existing.Description = book.Description
	existing.AvailableStock = book.AvailableStock
	if existing.AvailableStock > existing.TotalStock {
		existing.AvailableStock = existing.TotalStock
	}
	if existing.AvailableStock < 0 {
		existing.AvailableStock = 0
	}

	s.commit(ctx)
	return nil
}

func (s *Service) DeleteBookByISBN(ctx context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findLocked(isbn)
	if !ok {
		return errs.ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	s.commit(ctx)

	s.log.Info("book deleted", zap.String("isbn", isbn))
	return nil
}

func (s *Service) search(term string, field func(model.Book) string) []model.Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []model.Book{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Book, 0)
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(field(b)), term) {
			out = append(out, b)
		}
	}
	return out
}

func (s *Service) findLocked(isbn string) (int, bool) {
	for i := range s.books {
		if strings.EqualFold(s.books[i].ISBN, isbn) {
			return i, true
		}
	}
	return 0, false
}

func (s *Service) commit(ctx context.Context) {
	if err := s.store.SaveBooks(ctx, s.books); err != nil {
		s.log.Warn("catalog commit failed", zap.Error(err))
	}
}
