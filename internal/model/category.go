// File: internal/model/category.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCategoryColor = "#3498db"

type Category struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Color       string    `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CategoryStat 每個分類的花費總額與筆數（沒有支出的分類為 0）
type CategoryStat struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	Color        string          `db:"color"`
	TotalSpent   decimal.Decimal `db:"total_spent"`
	ExpenseCount int             `db:"expense_count"`
}

// DefaultCategories 註冊時為新使用者建立的分類
var DefaultCategories = []Category{
	{Name: "Groceries", Description: "Supermarket and food shopping", Color: "#e74c3c"},
	{Name: "Transport", Description: "Fuel, public transport and taxis", Color: "#3498db"},
	{Name: "Entertainment", Description: "Movies, games and outings", Color: "#9b59b6"},
	{Name: "Health", Description: "Medicine and medical appointments", Color: "#2ecc71"},
	{Name: "Shopping", Description: "Clothing and general purchases", Color: "#f39c12"},
	{Name: "Utilities", Description: "Electricity, water, internet and phone", Color: "#1abc9c"},
	{Name: "Other", Description: "Miscellaneous expenses", Color: "#95a5a6"},
}
