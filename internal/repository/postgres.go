package repository

import (
	"context"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

const (
	booksTableName   = `books`
	usersTableName   = `users`
	recordsTableName = `borrowing_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore writes each snapshot transactionally: delete the table's rows,
// insert the current collection. One commit never spans two aggregates, so a
// crash between a book update and a record save can still leave them divergent.
type PostgresStore struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewPostgresStore(db *sqlx.DB, log *zap.Logger) (*PostgresStore, error) {
	return &PostgresStore{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (p *PostgresStore) LoadBooks(ctx context.Context) ([]model.Book, error) {
	q, _, err := qb.Select("isbn", "title", "author", "publisher", "page_count", "category",
		"total_stock", "available_stock", "description", "date_added").
		From(booksTableName).
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := p.db.SelectContext(ctx, &books, q); err != nil {
		return nil, err
	}
	return books, nil
}

func (p *PostgresStore) SaveBooks(ctx context.Context, books []model.Book) error {
	return p.replace(ctx, booksTableName, len(books), func(tx *sqlx.Tx) error {
		ins := qb.Insert(booksTableName).
			Columns("isbn", "title", "author", "publisher", "page_count", "category",
				"total_stock", "available_stock", "description", "date_added")
		for _, b := range books {
			ins = ins.Values(b.ISBN, b.Title, b.Author, b.Publisher, b.PageCount, b.Category,
				b.TotalStock, b.AvailableStock, b.Description, b.DateAdded)
		}
		q, args, err := ins.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
}

func (p *PostgresStore) LoadUsers(ctx context.Context) ([]model.User, error) {
	q, _, err := qb.Select("user_id", "first_name", "last_name", "email", "phone",
		"address", "registration_date", "status").
		From(usersTableName).
		ToSql()
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := p.db.SelectContext(ctx, &users, q); err != nil {
		return nil, err
	}
	return users, nil
}

func (p *PostgresStore) SaveUsers(ctx context.Context, users []model.User) error {
	return p.replace(ctx, usersTableName, len(users), func(tx *sqlx.Tx) error {
		ins := qb.Insert(usersTableName).
			Columns("user_id", "first_name", "last_name", "email", "phone",
				"address", "registration_date", "status")
		for _, u := range users {
			ins = ins.Values(u.UserID, u.FirstName, u.LastName, u.Email, u.Phone,
				u.Address, u.RegistrationDate, u.Status)
		}
		q, args, err := ins.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
}

func (p *PostgresStore) LoadRecords(ctx context.Context) ([]model.BorrowingRecord, error) {
	q, _, err := qb.Select("record_id", "book_isbn", "user_id", "borrow_date",
		"due_date", "return_date", "status").
		From(recordsTableName).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	var records []model.BorrowingRecord
	if err := p.db.SelectContext(ctx, &records, q); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *PostgresStore) SaveRecords(ctx context.Context, records []model.BorrowingRecord) error {
	return p.replace(ctx, recordsTableName, len(records), func(tx *sqlx.Tx) error {
		ins := qb.Insert(recordsTableName).
			Columns("record_id", "book_isbn", "user_id", "borrow_date",
				"due_date", "return_date", "status")
		for _, r := range records {
			ins = ins.Values(r.RecordID, r.BookISBN, r.UserID, r.BorrowDate,
				r.DueDate, r.ReturnDate, r.Status)
		}
		q, args, err := ins.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
}

func (p *PostgresStore) replace(ctx context.Context, table string, n int, insert func(tx *sqlx.Tx) error) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "delete from "+table); err != nil {
		return err
	}
	if n > 0 {
		if err := insert(tx); err != nil {
			return p.wrapPgErr(err, table)
		}
	}
	return tx.Commit()
}

func (p *PostgresStore) wrapPgErr(err error, table string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		p.log.Error("snapshot violates schema constraints",
			zap.String("table", table), zap.String("code", pgErr.Code), zap.Error(err))
		return errors.Wrap(errs.ErrConflict, pgErr.Message)
	}
	return err
}
