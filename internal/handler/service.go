package handler

import (
	"context"

	"github.com/bookhive/lending-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddBook(ctx context.Context, book model.Book) (model.Book, error)
	ListBooks(ctx context.Context) []model.Book
	FindBookByISBN(ctx context.Context, isbn string) (model.Book, bool)
	FindBooksByTitle(ctx context.Context, title string) []model.Book
	FindBooksByAuthor(ctx context.Context, author string) []model.Book
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBookByISBN(ctx context.Context, isbn string) error
}

type MembershipService interface {
	AddUser(ctx context.Context, user model.User) (model.User, error)
	ListUsers(ctx context.Context) []model.User
	FindUserByID(ctx context.Context, userID string) (model.User, bool)
	FindUserByEmail(ctx context.Context, email string) (model.User, bool)
	UpdateUser(ctx context.Context, user model.User) error
	DeleteUserByID(ctx context.Context, userID string) error
}

type LedgerService interface {
	Borrow(ctx context.Context, userEmail, bookISBN string, loanDays int) (string, error)
	Return(ctx context.Context, bookISBN, userEmail string) (string, error)
	AllRecords() []model.BorrowingRecord
	ActiveLoansForUser(userID string) []model.BorrowingRecord
	OverdueLoans() []model.BorrowingRecord
	IsBookOnLoan(isbn string) bool
}
