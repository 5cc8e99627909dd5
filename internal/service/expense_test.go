package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validInput() ExpenseInput {
	return ExpenseInput{
		CategoryID:  2,
		Amount:      decimal.RequireFromString("12.345"),
		Description: " Lunch ",
		Date:        "2024-05-17",
	}
}

func TestExpenseInputToModel(t *testing.T) {
	e, err := validInput().toModel(1)
	require.NoError(t, err)
	require.Equal(t, "12.35", e.Amount.StringFixed(2))
	require.Equal(t, "Lunch", e.Description)
	require.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), e.Date)
	require.Equal(t, 1, e.UserID)

	cases := []struct {
		msg    string
		mutate func(*ExpenseInput)
	}{
		{"required", func(in *ExpenseInput) { in.Description = "" }},
		{"required", func(in *ExpenseInput) { in.CategoryID = 0 }},
		{"greater than 0", func(in *ExpenseInput) { in.Amount = decimal.Zero }},
		{"greater than 0", func(in *ExpenseInput) { in.Amount = decimal.NewFromInt(-5) }},
		{"greater than 0", func(in *ExpenseInput) { in.Amount = decimal.RequireFromString("0.001") }},
		{"too large", func(in *ExpenseInput) { in.Amount = decimal.New(1, 10) }},
		{"YYYY-MM-DD", func(in *ExpenseInput) { in.Date = "17/05/2024" }},
		{"YYYY-MM-DD", func(in *ExpenseInput) { in.Date = "2024-02-30" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := in.toModel(1)
		require.True(t, apperror.Is(err, apperror.KindValidation), tc.msg)
		require.Contains(t, err.Error(), tc.msg)
	}
}

func TestNormalizeFilter(t *testing.T) {
	f := NormalizeFilter(model.ExpenseFilter{})
	require.Equal(t, 1, f.Page)
	require.Equal(t, DefaultLimit, f.Limit)

	f = NormalizeFilter(model.ExpenseFilter{Page: 3, Limit: 500})
	require.Equal(t, 3, f.Page)
	require.Equal(t, MaxLimit, f.Limit)
}

func TestListExpenses(t *testing.T) {
	t.Cleanup(restoreGlobals)
	listExpenses = func(_ context.Context, _ database.DB, userID int, f model.ExpenseFilter) ([]model.Expense, int, error) {
		require.Equal(t, 1, userID)
		require.Equal(t, 3, f.Page)
		require.Equal(t, 10, f.Limit)
		return []model.Expense{{ID: 21}}, 25, nil
	}

	list, p, err := ListExpenses(context.Background(), nil, 1, model.ExpenseFilter{Page: 3})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, model.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10}, p)
}

func TestListExpensesPageTooLarge(t *testing.T) {
	t.Cleanup(restoreGlobals)
	listExpenses = func(context.Context, database.DB, int, model.ExpenseFilter) ([]model.Expense, int, error) {
		t.Fatal("store should not be called")
		return nil, 0, nil
	}

	_, _, err := ListExpenses(context.Background(), nil, 1, model.ExpenseFilter{Page: math.MaxInt / 10, Limit: 100})
	require.True(t, apperror.Is(err, apperror.KindValidation))
	require.EqualError(t, err, "page must be at most 21474836")
}

func TestListExpensesLastAllowedPage(t *testing.T) {
	t.Cleanup(restoreGlobals)
	listExpenses = func(_ context.Context, _ database.DB, _ int, f model.ExpenseFilter) ([]model.Expense, int, error) {
		require.Equal(t, MaxPage, f.Page)
		require.Positive(t, f.Offset())
		return nil, 3, nil
	}

	list, p, err := ListExpenses(context.Background(), nil, 1, model.ExpenseFilter{Page: MaxPage, Limit: MaxLimit})
	require.NoError(t, err)
	require.Empty(t, list)
	require.Equal(t, MaxPage, p.CurrentPage)
}

func TestListExpensesInvalidRange(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := ListExpenses(context.Background(), nil, 1, model.ExpenseFilter{DateRange: model.DateRange{From: &from, To: &to}})
	require.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign category", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getCategory = func(_ context.Context, _ database.DB, id, userID int) (*model.Category, error) {
			require.Equal(t, 2, id)
			require.Equal(t, 1, userID)
			return nil, fmt.Errorf("GetCategory: %w", store.ErrNotFound)
		}
		_, err := CreateExpense(ctx, nil, 1, validInput())
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		require.Contains(t, err.Error(), "category not found")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getCategory = func(context.Context, database.DB, int, int) (*model.Category, error) { return &model.Category{ID: 2}, nil }
		createExpense = func(_ context.Context, _ database.DB, e *model.Expense) (*model.Expense, error) {
			out := *e
			out.ID = 7
			out.CategoryName = "Food"
			return &out, nil
		}
		e, err := CreateExpense(ctx, nil, 1, validInput())
		require.NoError(t, err)
		require.Equal(t, 7, e.ID)
		require.Equal(t, "Food", e.CategoryName)
	})

	t.Run("check violation", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getCategory = func(context.Context, database.DB, int, int) (*model.Category, error) { return &model.Category{ID: 2}, nil }
		createExpense = func(context.Context, database.DB, *model.Expense) (*model.Expense, error) {
			return nil, fmt.Errorf("CreateExpense: %w", store.ErrCheck)
		}
		_, err := CreateExpense(ctx, nil, 1, validInput())
		require.True(t, apperror.Is(err, apperror.KindValidation))
	})
}

func TestUpdateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("expense not owned", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getExpense = func(context.Context, database.DB, int, int) (*model.Expense, error) {
			return nil, fmt.Errorf("GetExpense: %w", store.ErrNotFound)
		}
		_, err := UpdateExpense(ctx, nil, 9, 1, validInput())
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		require.Contains(t, err.Error(), "expense not found")
	})

	t.Run("new category not owned", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getExpense = func(context.Context, database.DB, int, int) (*model.Expense, error) { return &model.Expense{ID: 9}, nil }
		getCategory = func(context.Context, database.DB, int, int) (*model.Category, error) {
			return nil, fmt.Errorf("GetCategory: %w", store.ErrNotFound)
		}
		_, err := UpdateExpense(ctx, nil, 9, 1, validInput())
		require.Contains(t, err.Error(), "category not found")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getExpense = func(context.Context, database.DB, int, int) (*model.Expense, error) { return &model.Expense{ID: 9}, nil }
		getCategory = func(context.Context, database.DB, int, int) (*model.Category, error) { return &model.Category{ID: 2}, nil }
		updateExpense = func(_ context.Context, _ database.DB, e *model.Expense) (*model.Expense, error) {
			require.Equal(t, 9, e.ID)
			require.Equal(t, 1, e.UserID)
			return e, nil
		}
		e, err := UpdateExpense(ctx, nil, 9, 1, validInput())
		require.NoError(t, err)
		require.Equal(t, "Lunch", e.Description)
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Cleanup(restoreGlobals)
	deleteExpense = func(context.Context, database.DB, int, int) error {
		return fmt.Errorf("DeleteExpense: %w", store.ErrNotFound)
	}
	require.True(t, apperror.Is(DeleteExpense(context.Background(), nil, 9, 1), apperror.KindNotFound))

	deleteExpense = func(context.Context, database.DB, int, int) error { return nil }
	require.NoError(t, DeleteExpense(context.Background(), nil, 9, 1))
}
