package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker/internal/apperror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func queryCtx(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestExpenseFilterQuery(t *testing.T) {
	f, err := ExpenseFilterQuery(queryCtx("/expenses?page=2&limit=5&category=3&startDate=2024-01-01&sortBy=amount&sortOrder=asc"))
	require.NoError(t, err)
	require.Equal(t, 2, f.Page)
	require.Equal(t, 5, f.Limit)
	require.Equal(t, 3, *f.CategoryID)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
	require.Nil(t, f.To)
	require.Equal(t, "amount", f.SortBy)
	require.Equal(t, "asc", f.SortOrder)

	f, err = ExpenseFilterQuery(queryCtx("/expenses"))
	require.NoError(t, err)
	require.Zero(t, f.Page)
	require.Nil(t, f.CategoryID)

	_, err = ExpenseFilterQuery(queryCtx("/expenses?page=x"))
	require.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = ExpenseFilterQuery(queryCtx("/expenses?endDate=01-01-2024"))
	require.EqualError(t, err, "endDate must be in YYYY-MM-DD format")
}

func TestPathID(t *testing.T) {
	ctx := queryCtx("/expenses/7")
	ctx.SetParamNames("id")
	ctx.SetParamValues("7")
	id, err := PathID(ctx, "expense")
	require.NoError(t, err)
	require.Equal(t, 7, id)

	ctx.SetParamValues("abc")
	_, err = PathID(ctx, "expense")
	require.EqualError(t, err, "invalid expense ID")
}
