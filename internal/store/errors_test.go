package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := wrap("GetUserByID", pgx.ErrNoRows)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "GetUserByID: not found", err.Error())

	err = wrap("CreateCategory", pgError("23505", "categories_user_name_key"))
	require.ErrorIs(t, err, ErrConflict)
	require.Contains(t, err.Error(), "categories_user_name_key")

	require.ErrorIs(t, wrap("CreateExpense", pgError("23503", "expenses_category_owner_fkey")), ErrForeignKey)
	require.ErrorIs(t, wrap("CreateExpense", pgError("23514", "expenses_amount_positive")), ErrCheck)
	require.ErrorIs(t, wrap("CreateExpense", pgError("22003", "")), ErrCheck)

	raw := errors.New("connection reset")
	err = wrap("ListExpenses", raw)
	require.ErrorIs(t, err, raw)
	require.NotErrorIs(t, err, ErrNotFound)

	other := wrap("X", pgError("42P01", ""))
	require.NotErrorIs(t, other, ErrConflict)
}
