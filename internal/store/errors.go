package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// store 層只回報「發生了什麼」，由 service 決定對外訊息
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("unique violation")
	ErrForeignKey = errors.New("foreign key violation")
	ErrCheck      = errors.New("check violation")
)

// PostgreSQL SQLSTATE
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// wrap 加上操作名稱並把 pgx 錯誤轉成 sentinel
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrConflict, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrForeignKey, pgErr.ConstraintName)
		case codeCheckViolation, codeNumericOutOfRange:
			return fmt.Errorf("%s: %w (%s)", op, ErrCheck, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
