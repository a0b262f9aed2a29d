package handler

import (
	"net/http"

	md "github.com/bookhive/lending-service/pkg/middleware"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc    CatalogService
	membershipSvc MembershipService
	ledgerSvc     LedgerService
	enqueuer      Enqueuer
	log           *zap.Logger
}

func New(catalogSvc CatalogService, membershipSvc MembershipService, ledgerSvc LedgerService, enqueuer Enqueuer, log *zap.Logger) *Handler {
	h := &Handler{
		catalogSvc:    catalogSvc,
		membershipSvc: membershipSvc,
		ledgerSvc:     ledgerSvc,
		enqueuer:      enqueuer,
		log:           log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/manage/reconcile", h.Reconcile)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/:isbn", h.GetBook)
	api.PATCH("/books/:isbn", h.UpdateBook)
	api.DELETE("/books/:isbn", h.DeleteBook)
	api.GET("/books/:isbn/on-loan", h.BookOnLoan)

	api.POST("/users", h.AddUser)
	api.GET("/users", h.GetUsers)
	api.GET("/users/:userId", h.GetUser)
	api.PATCH("/users/:userId", h.UpdateUser)
	api.DELETE("/users/:userId", h.DeleteUser)

	api.POST("/loans", h.Borrow)
	api.POST("/loans/return", h.Return)
	api.GET("/loans", h.GetLoans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(book); err != nil {
		return err
	}
	added, err := h.catalogSvc.AddBook(c.Request().Context(), book)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, added)
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()
	if title := c.QueryParam("title"); title != "" {
		return c.JSON(http.StatusOK, h.catalogSvc.FindBooksByTitle(ctx, title))
	}
	if author := c.QueryParam("author"); author != "" {
		return c.JSON(http.StatusOK, h.catalogSvc.FindBooksByAuthor(ctx, author))
	}
	return c.JSON(http.StatusOK, h.catalogSvc.ListBooks(ctx))
}

func (h *Handler) GetBook(c echo.Context) error {
	isbn := c.Param("isbn")
	book, ok := h.catalogSvc.FindBookByISBN(c.Request().Context(), isbn)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrBookNotFound.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book.ISBN = c.Param("isbn")
	if err := c.Validate(book); err != nil {
		return err
	}
	if err := h.catalogSvc.UpdateBook(c.Request().Context(), book); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	isbn := c.Param("isbn")
	if h.ledgerSvc.IsBookOnLoan(isbn) {
		return echo.NewHTTPError(http.StatusConflict, "book has active loans")
	}
	if err := h.catalogSvc.DeleteBookByISBN(c.Request().Context(), isbn); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) BookOnLoan(c echo.Context) error {
	type resp struct {
		ISBN   string `json:"isbn"`
		OnLoan bool   `json:"onLoan"`
	}
	isbn := c.Param("isbn")
	return c.JSON(http.StatusOK, resp{ISBN: isbn, OnLoan: h.ledgerSvc.IsBookOnLoan(isbn)})
}

func (h *Handler) AddUser(c echo.Context) error {
	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(user); err != nil {
		return err
	}
	added, err := h.membershipSvc.AddUser(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, added)
}

func (h *Handler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	if email := c.QueryParam("email"); email != "" {
		user, ok := h.membershipSvc.FindUserByEmail(ctx, email)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, errs.ErrUserNotFound.Error())
		}
		return c.JSON(http.StatusOK, []model.User{user})
	}
	return c.JSON(http.StatusOK, h.membershipSvc.ListUsers(ctx))
}

func (h *Handler) GetUser(c echo.Context) error {
	user, ok := h.membershipSvc.FindUserByID(c.Request().Context(), c.Param("userId"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrUserNotFound.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user.UserID = c.Param("userId")
	if err := c.Validate(user); err != nil {
		return err
	}
	if err := h.membershipSvc.UpdateUser(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.membershipSvc.DeleteUserByID(c.Request().Context(), c.Param("userId")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	recordID, err := h.ledgerSvc.Borrow(ctx, req.UserEmail, req.BookISBN, req.LoanDays)
	if err != nil {
		return httpError(err)
	}
	h.publishLoanEvent(ctx, recordID, req.BookISBN, req.UserEmail, string(model.StatusBorrowed))

	return c.JSON(http.StatusCreated, model.LoanResponse{RecordID: recordID})
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	recordID, err := h.ledgerSvc.Return(ctx, req.BookISBN, req.UserEmail)
	if err != nil {
		return httpError(err)
	}
	h.publishLoanEvent(ctx, recordID, req.BookISBN, req.UserEmail, string(model.StatusReturned))

	return c.JSON(http.StatusOK, model.LoanResponse{RecordID: recordID})
}

func (h *Handler) GetLoans(c echo.Context) error {
	if userID := c.QueryParam("userId"); userID != "" {
		return c.JSON(http.StatusOK, h.ledgerSvc.ActiveLoansForUser(userID))
	}
	if c.QueryParam("overdue") == "true" {
		return c.JSON(http.StatusOK, h.ledgerSvc.OverdueLoans())
	}
	return c.JSON(http.StatusOK, h.ledgerSvc.AllRecords())
}

// Reconcile compares each book's available stock against total stock minus its
// active loans. Stock and records commit separately, so drift is possible after
// a crash between the two; it is reported here instead of silently patched.
func (h *Handler) Reconcile(c echo.Context) error {
	ctx := c.Request().Context()

	active := make(map[string]int)
	for _, r := range h.ledgerSvc.AllRecords() {
		if r.Status == model.StatusBorrowed {
			active[r.BookISBN]++
		}
	}

	drifts := make([]model.StockDrift, 0)
	for _, b := range h.catalogSvc.ListBooks(ctx) {
		expected := b.TotalStock - active[b.ISBN]
		if expected < 0 {
			expected = 0
		}
		if b.AvailableStock != expected {
			drifts = append(drifts, model.StockDrift{
				ISBN:           b.ISBN,
				AvailableStock: b.AvailableStock,
				ExpectedStock:  expected,
				ActiveLoans:    active[b.ISBN],
			})
		}
	}
	if len(drifts) > 0 {
		h.log.Warn("stock drift detected", zap.Int("books", len(drifts)))
	}
	return c.JSON(http.StatusOK, drifts)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrNoActiveLoan),
		errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
