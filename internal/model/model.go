package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type BorrowingStatus string

const (
	StatusBorrowed BorrowingStatus = "BORROWED"
	StatusReturned BorrowingStatus = "RETURNED"
	// StatusOverdue exists in stored data from older exports but is never
	// assigned here: overdue is derived from the due date at query time.
	StatusOverdue BorrowingStatus = "OVERDUE"
)

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "ACTIVE"
	MembershipPassive   MembershipStatus = "PASSIVE"
	MembershipSuspended MembershipStatus = "SUSPENDED"
	MembershipExpired   MembershipStatus = "EXPIRED"
)

// Date is a calendar date without a time-of-day component. It marshals as
// "yyyy-mm-dd" in JSON and round trips through a DATE column.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date: invalid literal %s", s)
	}
	t, err := time.Parse(time.DateOnly, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}

// Before reports whether d is strictly earlier than other, comparing dates only.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

type Book struct {
	ISBN           string    `json:"isbn" db:"isbn" validate:"required"`
	Title          string    `json:"title" db:"title" validate:"required"`
	Author         string    `json:"author" db:"author" validate:"required"`
	Publisher      string    `json:"publisher" db:"publisher"`
	PageCount      int       `json:"pageCount" db:"page_count" validate:"gt=0"`
	Category       string    `json:"category" db:"category"`
	TotalStock     int       `json:"totalStock" db:"total_stock" validate:"gte=0"`
	AvailableStock int       `json:"availableStock" db:"available_stock" validate:"gte=0"`
	Description    string    `json:"description,omitempty" db:"description"`
	DateAdded      time.Time `json:"dateAdded" db:"date_added"`
}

// DecreaseAvailable takes one copy off the shelf. Saturating: a call at zero is
// a no-op rather than an error, so stock can never leave [0, totalStock].
func (b *Book) DecreaseAvailable() {
	if b.AvailableStock > 0 {
		b.AvailableStock--
	}
}

// IncreaseAvailable puts one copy back, capped at totalStock.
func (b *Book) IncreaseAvailable() {
	if b.AvailableStock < b.TotalStock {
		b.AvailableStock++
	}
}

type User struct {
	UserID           string           `json:"userId" db:"user_id"`
	FirstName        string           `json:"firstName" db:"first_name" validate:"required"`
	LastName         string           `json:"lastName" db:"last_name" validate:"required"`
	Email            string           `json:"email" db:"email" validate:"required,email"`
	Phone            string           `json:"phone,omitempty" db:"phone"`
	Address          string           `json:"address,omitempty" db:"address"`
	RegistrationDate Date             `json:"registrationDate" db:"registration_date"`
	Status           MembershipStatus `json:"status" db:"status" validate:"omitempty,oneof=ACTIVE PASSIVE SUSPENDED EXPIRED"`
}

// BorrowingRecord links a book to a user for one loan. Book and user are
// referenced by plain identifiers and resolved lazily: records outlive both,
// so a dangling reference is an expected lookup miss, not corruption.
type BorrowingRecord struct {
	RecordID   string          `json:"recordId" db:"record_id"`
	BookISBN   string          `json:"bookIsbn" db:"book_isbn"`
	UserID     string          `json:"userId" db:"user_id"`
	BorrowDate Date            `json:"borrowDate" db:"borrow_date"`
	DueDate    Date            `json:"dueDate" db:"due_date"`
	ReturnDate *Date           `json:"returnDate" db:"return_date"`
	Status     BorrowingStatus `json:"status" db:"status"`
}
