package store

import (
	"context"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
)

const categoryColumns = `id, user_id, name, description, color, created_at`

func scanCategory(row interface{ Scan(...any) error }) (*model.Category, error) {
	c := &model.Category{}
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Description,
		&c.Color,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func ListCategories(ctx context.Context, db database.DB, userID int) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT `+categoryColumns+`
		 FROM categories
		 WHERE user_id = $1
		 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListCategories", err)
	}
	defer rows.Close()

	list := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, wrap("ListCategories", err)
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListCategories", err)
	}
	return list, nil
}

func GetCategory(ctx context.Context, db database.DB, id, userID int) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	c, err := scanCategory(row)
	if err != nil {
		return nil, wrap("GetCategory", err)
	}
	return c, nil
}

// CategoryNameExists 同一使用者下是否已有同名分類（排除 exceptID）
func CategoryNameExists(ctx context.Context, db database.DB, userID int, name string, exceptID int) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM categories WHERE user_id = $1 AND name = $2 AND id <> $3
		 )`,
		userID,
		name,
		exceptID,
	).Scan(&exists)
	if err != nil {
		return false, wrap("CategoryNameExists", err)
	}
	return exists, nil
}

func CreateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, description, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.UserID,
		c.Name,
		c.Description,
		c.Color,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, wrap("CreateCategory", err)
	}
	return c, nil
}

func UpdateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`UPDATE categories
		 SET name = $1, description = $2, color = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING `+categoryColumns,
		c.Name,
		c.Description,
		c.Color,
		c.ID,
		c.UserID,
	)
	updated, err := scanCategory(row)
	if err != nil {
		return nil, wrap("UpdateCategory", err)
	}
	return updated, nil
}

func CountExpensesByCategory(ctx context.Context, db database.DB, id, userID int) (int, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM expenses WHERE category_id = $1 AND user_id = $2`,
		id,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, wrap("CountExpensesByCategory", err)
	}
	return n, nil
}

func DeleteCategory(ctx context.Context, db database.DB, id, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return wrap("DeleteCategory", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteCategory", ErrNotFound)
	}
	return nil
}

// CategoryStats 每個分類在區間內的總額與筆數，未使用的分類以 0 呈現
func CategoryStats(ctx context.Context, db database.DB, userID int, r model.DateRange) ([]model.CategoryStat, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.name, c.color,
		        COALESCE(SUM(e.amount), 0) AS total_spent,
		        COUNT(e.id) AS expense_count
		 FROM categories c
		 LEFT JOIN expenses e
		   ON e.category_id = c.id
		  AND e.user_id = c.user_id
		  AND ($2::date IS NULL OR e.date >= $2::date)
		  AND ($3::date IS NULL OR e.date <= $3::date)
		 WHERE c.user_id = $1
		 GROUP BY c.id, c.name, c.color
		 ORDER BY total_spent DESC, c.name`,
		userID,
		r.From,
		r.To,
	)
	if err != nil {
		return nil, wrap("CategoryStats", err)
	}
	defer rows.Close()

	stats := []model.CategoryStat{}
	for rows.Next() {
		var s model.CategoryStat
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &s.TotalSpent, &s.ExpenseCount); err != nil {
			return nil, wrap("CategoryStats", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("CategoryStats", err)
	}
	return stats, nil
}
