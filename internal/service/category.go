package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"
)

const MaxCategoryNameLength = 100

// 測試可覆寫
var (
	listCategories          = store.ListCategories
	getCategory             = store.GetCategory
	categoryNameExists      = store.CategoryNameExists
	createCategory          = store.CreateCategory
	updateCategory          = store.UpdateCategory
	countExpensesByCategory = store.CountExpensesByCategory
	deleteCategory          = store.DeleteCategory
	categoryStats           = store.CategoryStats
)

// CategoryInput nil 欄位在更新時維持原值
type CategoryInput struct {
	Name        *string
	Description *string
	Color       *string
}

func checkCategoryName(name string) error {
	if name == "" {
		return apperror.Validation("category name is required")
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return apperror.Validation("category name must be at most 100 characters")
	}
	return nil
}

func checkColor(color string) error {
	if validate.Var(color, "hexcolor,max=7") != nil {
		return apperror.Validation("color must be a hex color like #3498db")
	}
	return nil
}

func ListCategories(ctx context.Context, db database.DB, userID int) ([]model.Category, error) {
	return listCategories(ctx, db, userID)
}

// CreateCategory 名稱必填且同一使用者下不可重複；顏色預設 #3498db
func CreateCategory(ctx context.Context, db database.DB, userID int, in CategoryInput) (*model.Category, error) {
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}
	if err := checkCategoryName(name); err != nil {
		return nil, err
	}

	c := &model.Category{UserID: userID, Name: name, Color: model.DefaultCategoryColor}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil && *in.Color != "" {
		if err := checkColor(*in.Color); err != nil {
			return nil, err
		}
		c.Color = *in.Color
	}

	exists, err := categoryNameExists(ctx, db, userID, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a category with that name already exists")
	}

	created, err := createCategory(ctx, db, c)
	if errors.Is(err, store.ErrConflict) {
		return nil, apperror.Wrap(apperror.KindConflict, "a category with that name already exists", err)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCategory 依序檢查：存在 → 名稱衝突 → 寫入
func UpdateCategory(ctx context.Context, db database.DB, id, userID int, in CategoryInput) (*model.Category, error) {
	if in.Name != nil {
		if err := checkCategoryName(strings.TrimSpace(*in.Name)); err != nil {
			return nil, err
		}
	}
	if in.Color != nil && *in.Color != "" {
		if err := checkColor(*in.Color); err != nil {
			return nil, err
		}
	}

	current, err := getCategory(ctx, db, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != current.Name {
			exists, err := categoryNameExists(ctx, db, userID, name, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperror.Conflict("another category already uses that name")
			}
		}
		current.Name = name
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil && *in.Color != "" {
		current.Color = *in.Color
	}

	updated, err := updateCategory(ctx, db, current)
	switch {
	case errors.Is(err, store.ErrConflict):
		return nil, apperror.Wrap(apperror.KindConflict, "another category already uses that name", err)
	case errors.Is(err, store.ErrNotFound):
		return nil, apperror.NotFound("category not found")
	case err != nil:
		return nil, err
	}
	return updated, nil
}

// DeleteCategory 仍有支出引用時回傳 Constraint
func DeleteCategory(ctx context.Context, db database.DB, id, userID int) error {
	if _, err := getCategory(ctx, db, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.NotFound("category not found")
		}
		return err
	}

	n, err := countExpensesByCategory(ctx, db, id, userID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperror.Constraint("cannot delete a category that has expenses")
	}

	err = deleteCategory(ctx, db, id, userID)
	switch {
	case errors.Is(err, store.ErrForeignKey):
		return apperror.Wrap(apperror.KindConstraint, "cannot delete a category that has expenses", err)
	case errors.Is(err, store.ErrNotFound):
		return apperror.NotFound("category not found")
	}
	return err
}

// CategoryStats 每個分類的總額與筆數，總額高的在前
func CategoryStats(ctx context.Context, db database.DB, userID int, r model.DateRange) ([]model.CategoryStat, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	return categoryStats(ctx, db, userID, r)
}
