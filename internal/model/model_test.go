package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	require.Equal(t, Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10}, p)
	require.Equal(t, 0, NewPagination(1, 10, 0).TotalPages)
	require.Equal(t, 2, NewPagination(2, 10, 20).TotalPages)
	require.Equal(t, 0, NewPagination(1, 0, 5).TotalPages)
}

func TestExpenseFilterOffset(t *testing.T) {
	require.Equal(t, 0, ExpenseFilter{Page: 0, Limit: 10}.Offset())
	require.Equal(t, 0, ExpenseFilter{Page: 1, Limit: 10}.Offset())
	require.Equal(t, 20, ExpenseFilter{Page: 3, Limit: 10}.Offset())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings(7)
	require.Equal(t, 7, s.UserID)
	require.Equal(t, "system", s.Theme)
	require.Equal(t, "es", s.Language)
	require.Equal(t, "USD", s.Currency)
	require.Equal(t, "DD/MM/YYYY", s.DateFormat)
	require.Equal(t, map[string]bool{"expenses": true, "budgets": true, "reports": false, "marketing": false}, s.Notifications)

	// 每次呼叫都是新的 map
	s.Notifications["reports"] = true
	require.False(t, DefaultSettings(7).Notifications["reports"])
}

func TestDefaultCategoriesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range DefaultCategories {
		require.False(t, seen[c.Name], c.Name)
		seen[c.Name] = true
		require.Regexp(t, `^#[0-9a-f]{6}$`, c.Color)
	}
}
