package errs

import (
	"errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrOutOfStock      = errors.New("book is out of stock")
	ErrAlreadyBorrowed = errors.New("book already borrowed by user")
	ErrNoActiveLoan    = errors.New("no active borrowing record")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
)
