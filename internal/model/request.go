package model

type BorrowRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	BookISBN  string `json:"bookIsbn" validate:"required"`
	LoanDays  int    `json:"loanDays" validate:"required,gt=0"`
}

type ReturnRequest struct {
	BookISBN  string `json:"bookIsbn" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type LoanResponse struct {
	RecordID string `json:"recordId"`
}

// StockDrift is one reconciliation finding: a book whose available stock does
// not match what its active loans imply.
type StockDrift struct {
	ISBN           string `json:"isbn"`
	AvailableStock int    `json:"availableStock"`
	ExpectedStock  int    `json:"expectedStock"`
	ActiveLoans    int    `json:"activeLoans"`
}
