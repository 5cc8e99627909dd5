package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"

	"github.com/shopspring/decimal"
)

const (
	DateLayout   = "2006-01-02"
	DefaultLimit = 10
	MaxLimit     = 100

	// (MaxPage-1)*MaxLimit 不超過 int32，OFFSET 不會溢位
	MaxPage = math.MaxInt32 / MaxLimit
)

// NUMERIC(12,2) 的上限
var maxAmount = decimal.New(1, 10)

// 測試可覆寫
var (
	listExpenses  = store.ListExpenses
	getExpense    = store.GetExpense
	createExpense = store.CreateExpense
	updateExpense = store.UpdateExpense
	deleteExpense = store.DeleteExpense
)

// ExpenseInput 建立與更新共用；所有欄位皆必填
type ExpenseInput struct {
	CategoryID  int
	Amount      decimal.Decimal
	Description string
	Date        string
}

func (in ExpenseInput) toModel(userID int) (*model.Expense, error) {
	desc := strings.TrimSpace(in.Description)
	if in.CategoryID <= 0 || desc == "" || strings.TrimSpace(in.Date) == "" {
		return nil, apperror.Validation("category_id, amount, description and date are required")
	}
	amount := in.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than 0")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return nil, apperror.Validation("amount is too large")
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, apperror.Validation("date must be in YYYY-MM-DD format")
	}
	return &model.Expense{
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Amount:      amount,
		Description: desc,
		Date:        date,
	}, nil
}

// NormalizeFilter 套用分頁預設值與上限
func NormalizeFilter(f model.ExpenseFilter) model.ExpenseFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func ListExpenses(ctx context.Context, db database.DB, userID int, f model.ExpenseFilter) ([]model.Expense, model.Pagination, error) {
	if err := checkRange(f.DateRange); err != nil {
		return nil, model.Pagination{}, err
	}
	if f.Page > MaxPage {
		return nil, model.Pagination{}, apperror.Validation(fmt.Sprintf("page must be at most %d", MaxPage))
	}
	f = NormalizeFilter(f)
	list, total, err := listExpenses(ctx, db, userID, f)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return list, model.NewPagination(f.Page, f.Limit, total), nil
}

func ownCategory(ctx context.Context, db database.DB, categoryID, userID int) error {
	_, err := getCategory(ctx, db, categoryID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("category not found")
	}
	return err
}

// CreateExpense 驗證 → 分類歸屬 → 寫入
func CreateExpense(ctx context.Context, db database.DB, userID int, in ExpenseInput) (*model.Expense, error) {
	e, err := in.toModel(userID)
	if err != nil {
		return nil, err
	}
	if err := ownCategory(ctx, db, e.CategoryID, userID); err != nil {
		return nil, err
	}

	created, err := createExpense(ctx, db, e)
	switch {
	case errors.Is(err, store.ErrForeignKey):
		return nil, apperror.Wrap(apperror.KindNotFound, "category not found", err)
	case errors.Is(err, store.ErrCheck):
		return nil, apperror.Wrap(apperror.KindValidation, "amount must be greater than 0", err)
	case err != nil:
		return nil, err
	}
	return created, nil
}

// UpdateExpense 驗證 → 支出歸屬 → 新分類歸屬 → 寫入
func UpdateExpense(ctx context.Context, db database.DB, id, userID int, in ExpenseInput) (*model.Expense, error) {
	e, err := in.toModel(userID)
	if err != nil {
		return nil, err
	}
	e.ID = id

	if _, err := getExpense(ctx, db, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NotFound("expense not found")
		}
		return nil, err
	}
	if err := ownCategory(ctx, db, e.CategoryID, userID); err != nil {
		return nil, err
	}

	updated, err := updateExpense(ctx, db, e)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, apperror.NotFound("expense not found")
	case errors.Is(err, store.ErrForeignKey):
		return nil, apperror.Wrap(apperror.KindNotFound, "category not found", err)
	case errors.Is(err, store.ErrCheck):
		return nil, apperror.Wrap(apperror.KindValidation, "amount must be greater than 0", err)
	case err != nil:
		return nil, err
	}
	return updated, nil
}

func DeleteExpense(ctx context.Context, db database.DB, id, userID int) error {
	err := deleteExpense(ctx, db, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("expense not found")
	}
	return err
}
