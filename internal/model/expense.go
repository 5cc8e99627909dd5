// File: internal/model/expense.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense 含分類名稱與顏色（JOIN 取得，永遠反映分類目前的值）
type Expense struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	CategoryID    int             `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	CategoryName  string          `db:"category_name"`
	CategoryColor string          `db:"category_color"`
}

// ExpenseFilter 列表查詢條件；SortBy/SortOrder 不合法時由 store 退回 date DESC
type ExpenseFilter struct {
	Page       int
	Limit      int
	CategoryID *int
	DateRange
	SortBy    string
	SortOrder string
}

// Offset 依 Page/Limit 計算 SQL OFFSET
func (f ExpenseFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// NewPagination totalPages = ceil(total/limit)
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{CurrentPage: page, TotalPages: pages, TotalItems: total, ItemsPerPage: limit}
}
