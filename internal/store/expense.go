package store

import (
	"context"
	"fmt"
	"strings"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
)

const expenseColumns = `e.id, e.user_id, e.category_id, e.amount, e.description, e.date,
       e.created_at, e.updated_at, c.name AS category_name, c.color AS category_color`

// 允許排序的欄位，其餘值退回 date
var sortColumns = map[string]string{
	"date":        "e.date",
	"amount":      "e.amount",
	"description": "e.description",
	"created_at":  "e.created_at",
}

// OrderBy 組出 ORDER BY 子句；sortBy 或 sortOrder 任一不合法時使用 date DESC
func OrderBy(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	dir := strings.ToUpper(strings.TrimSpace(sortOrder))
	if !ok || (dir != "ASC" && dir != "DESC") {
		return "e.date DESC, e.id DESC"
	}
	return fmt.Sprintf("%s %s, e.id %s", col, dir, dir)
}

func scanExpense(row interface{ Scan(...any) error }) (*model.Expense, error) {
	e := &model.Expense{}
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CategoryID,
		&e.Amount,
		&e.Description,
		&e.Date,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CategoryName,
		&e.CategoryColor,
	); err != nil {
		return nil, err
	}
	return e, nil
}

// expenseWhere 依篩選條件組出 WHERE 與參數，$1 一律是 user_id
func expenseWhere(userID int, f model.ExpenseFilter) (string, []any) {
	conds := []string{"e.user_id = $1"}
	args := []any{userID}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("e.category_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("e.date >= $%d::date", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("e.date <= $%d::date", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

// ListExpenses 回傳單頁資料與符合條件的總筆數
func ListExpenses(ctx context.Context, db database.DB, userID int, f model.ExpenseFilter) ([]model.Expense, int, error) {
	where, args := expenseWhere(userID, f)

	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM expenses e WHERE `+where,
		args...,
	).Scan(&total); err != nil {
		return nil, 0, wrap("ListExpenses", err)
	}

	pageArgs := append(append([]any{}, args...), f.Limit, f.Offset())
	query := fmt.Sprintf(
		`SELECT %s
		 FROM expenses e
		 JOIN categories c ON c.id = e.category_id
		 WHERE %s
		 ORDER BY %s
		 LIMIT $%d OFFSET $%d`,
		expenseColumns, where, OrderBy(f.SortBy, f.SortOrder), len(args)+1, len(args)+2,
	)
	rows, err := db.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, wrap("ListExpenses", err)
	}
	defer rows.Close()

	list := []model.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, wrap("ListExpenses", err)
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap("ListExpenses", err)
	}
	return list, total, nil
}

func GetExpense(ctx context.Context, db database.DB, id, userID int) (*model.Expense, error) {
	row := db.QueryRow(ctx,
		`SELECT `+expenseColumns+`
		 FROM expenses e
		 JOIN categories c ON c.id = e.category_id
		 WHERE e.id = $1 AND e.user_id = $2`,
		id,
		userID,
	)
	e, err := scanExpense(row)
	if err != nil {
		return nil, wrap("GetExpense", err)
	}
	return e, nil
}

// CreateExpense 寫入後直接回傳含分類欄位的資料列
func CreateExpense(ctx context.Context, db database.DB, in *model.Expense) (*model.Expense, error) {
	row := db.QueryRow(ctx,
		`WITH e AS (
		   INSERT INTO expenses (user_id, category_id, amount, description, date)
		   VALUES ($1, $2, $3, $4, $5)
		   RETURNING *
		 )
		 SELECT `+expenseColumns+`
		 FROM e
		 JOIN categories c ON c.id = e.category_id AND c.user_id = e.user_id`,
		in.UserID,
		in.CategoryID,
		in.Amount,
		in.Description,
		in.Date,
	)
	e, err := scanExpense(row)
	if err != nil {
		return nil, wrap("CreateExpense", err)
	}
	return e, nil
}

// UpdateExpense 覆寫所有欄位並更新 updated_at；找不到（或不屬於該使用者）回傳 ErrNotFound
func UpdateExpense(ctx context.Context, db database.DB, in *model.Expense) (*model.Expense, error) {
	row := db.QueryRow(ctx,
		`WITH e AS (
		   UPDATE expenses
		   SET category_id = $1, amount = $2, description = $3, date = $4, updated_at = now()
		   WHERE id = $5 AND user_id = $6
		   RETURNING *
		 )
		 SELECT `+expenseColumns+`
		 FROM e
		 JOIN categories c ON c.id = e.category_id AND c.user_id = e.user_id`,
		in.CategoryID,
		in.Amount,
		in.Description,
		in.Date,
		in.ID,
		in.UserID,
	)
	e, err := scanExpense(row)
	if err != nil {
		return nil, wrap("UpdateExpense", err)
	}
	return e, nil
}

func DeleteExpense(ctx context.Context, db database.DB, id, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return wrap("DeleteExpense", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteExpense", ErrNotFound)
	}
	return nil
}
