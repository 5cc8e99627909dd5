// File: internal/model/settings.go
package model

import "time"

type Settings struct {
	UserID        int             `db:"user_id"`
	Theme         string          `db:"theme"`
	Language      string          `db:"language"`
	Currency      string          `db:"currency"`
	DateFormat    string          `db:"date_format"`
	Notifications map[string]bool `db:"notifications"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// DefaultSettings 尚未儲存設定時的值
func DefaultSettings(userID int) Settings {
	return Settings{
		UserID:     userID,
		Theme:      "system",
		Language:   "es",
		Currency:   "USD",
		DateFormat: "DD/MM/YYYY",
		Notifications: map[string]bool{
			"expenses":  true,
			"budgets":   true,
			"reports":   false,
			"marketing": false,
		},
	}
}

// SettingsPatch nil 表示維持原值；Notifications 逐鍵覆蓋
type SettingsPatch struct {
	Theme         *string
	Language      *string
	Currency      *string
	DateFormat    *string
	Notifications map[string]bool
}
