package service

import (
	"context"
	"errors"
	"slices"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"
)

var (
	Themes      = []string{"light", "dark", "system"}
	Languages   = []string{"es", "en", "pt"}
	Currencies  = []string{"USD", "EUR", "COP", "MXN", "ARS"}
	DateFormats = []string{"DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD", "DD-MM-YYYY"}
)

// 測試可覆寫
var (
	getSettings    = store.GetSettings
	upsertSettings = store.UpsertSettings
)

// GetSettings 尚未儲存時回傳預設值
func GetSettings(ctx context.Context, db database.DB, userID int) (*model.Settings, error) {
	s, err := getSettings(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		d := model.DefaultSettings(userID)
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	if s.Notifications == nil {
		s.Notifications = map[string]bool{}
	}
	return s, nil
}

func checkChoice(v *string, allowed []string, msg string) error {
	if v != nil && !slices.Contains(allowed, *v) {
		return apperror.Validation(msg)
	}
	return nil
}

// UpdateSettings 驗證後與目前設定（或預設值）合併再 upsert
func UpdateSettings(ctx context.Context, db database.DB, userID int, p model.SettingsPatch) (*model.Settings, error) {
	if err := checkChoice(p.Theme, Themes, "invalid theme"); err != nil {
		return nil, err
	}
	if err := checkChoice(p.Language, Languages, "invalid language"); err != nil {
		return nil, err
	}
	if err := checkChoice(p.Currency, Currencies, "invalid currency"); err != nil {
		return nil, err
	}
	if err := checkChoice(p.DateFormat, DateFormats, "invalid date format"); err != nil {
		return nil, err
	}

	s, err := GetSettings(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.DateFormat != nil {
		s.DateFormat = *p.DateFormat
	}
	merged := make(map[string]bool, len(s.Notifications)+len(p.Notifications))
	for k, v := range s.Notifications {
		merged[k] = v
	}
	for k, v := range p.Notifications {
		merged[k] = v
	}
	s.Notifications = merged
	s.UserID = userID

	return upsertSettings(ctx, db, s)
}
