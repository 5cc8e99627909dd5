package store

import (
	"context"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
)

// GetSettings 尚未建立時回傳 ErrNotFound
func GetSettings(ctx context.Context, db database.DB, userID int) (*model.Settings, error) {
	s := &model.Settings{}
	err := db.QueryRow(ctx,
		`SELECT user_id, theme, language, currency, date_format, notifications, created_at, updated_at
		 FROM user_settings WHERE user_id = $1`,
		userID,
	).Scan(
		&s.UserID,
		&s.Theme,
		&s.Language,
		&s.Currency,
		&s.DateFormat,
		&s.Notifications,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, wrap("GetSettings", err)
	}
	return s, nil
}

// UpsertSettings 以 user_id 為鍵寫入完整設定
func UpsertSettings(ctx context.Context, db database.DB, s *model.Settings) (*model.Settings, error) {
	err := db.QueryRow(ctx,
		`INSERT INTO user_settings (user_id, theme, language, currency, date_format, notifications)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE
		 SET theme = EXCLUDED.theme,
		     language = EXCLUDED.language,
		     currency = EXCLUDED.currency,
		     date_format = EXCLUDED.date_format,
		     notifications = EXCLUDED.notifications,
		     updated_at = now()
		 RETURNING created_at, updated_at`,
		s.UserID,
		s.Theme,
		s.Language,
		s.Currency,
		s.DateFormat,
		s.Notifications,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrap("UpsertSettings", err)
	}
	return s, nil
}
