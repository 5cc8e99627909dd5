package store

import (
	"context"
	"strings"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
)

const userColumns = `id, username, email, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByLogin 以使用者名稱或 Email（不分大小寫）查詢
func GetUserByLogin(ctx context.Context, db database.DB, login string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE username = $1 OR email = $2
		 ORDER BY (username = $1) DESC
		 LIMIT 1`,
		login,
		strings.ToLower(login),
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByLogin", err)
	}
	return u, nil
}

// UserExists 檢查 username 或 email 是否已被其他使用者（id <> exceptID）使用
func UserExists(ctx context.Context, db database.DB, username, email string, exceptID int) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM users
		   WHERE (username = $1 OR email = $2) AND id <> $3
		 )`,
		username,
		email,
		exceptID,
	).Scan(&exists)
	if err != nil {
		return false, wrap("UserExists", err)
	}
	return exists, nil
}

// CreateUserWithDefaults 在同一個 statement 內建立使用者並寫入預設分類
func CreateUserWithDefaults(ctx context.Context, db database.DB, u *model.User, defaults []model.Category) (*model.User, error) {
	names := make([]string, len(defaults))
	descriptions := make([]string, len(defaults))
	colors := make([]string, len(defaults))
	for i, c := range defaults {
		names[i] = c.Name
		descriptions[i] = c.Description
		colors[i] = c.Color
	}

	row := db.QueryRow(ctx,
		`WITH new_user AS (
		   INSERT INTO users (username, email, password_hash)
		   VALUES ($1, $2, $3)
		   RETURNING id, created_at, updated_at
		 ), seeded AS (
		   INSERT INTO categories (user_id, name, description, color)
		   SELECT new_user.id, d.name, d.description, d.color
		   FROM new_user, unnest($4::text[], $5::text[], $6::text[]) AS d(name, description, color)
		 )
		 SELECT id, created_at, updated_at FROM new_user`,
		u.Username,
		u.Email,
		u.PasswordHash,
		names,
		descriptions,
		colors,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrap("CreateUserWithDefaults", err)
	}
	return u, nil
}

// UpdateUserProfile nil 欄位維持原值
func UpdateUserProfile(ctx context.Context, db database.DB, userID int, username, email *string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET username = COALESCE($1, username),
		     email = COALESCE($2, email),
		     updated_at = now()
		 WHERE id = $3
		 RETURNING `+userColumns,
		username,
		email,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("UpdateUserProfile", err)
	}
	return u, nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return wrap("UpdateUserPassword", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("UpdateUserPassword", ErrNotFound)
	}
	return nil
}
