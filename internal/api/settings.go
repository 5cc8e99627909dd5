package api

import (
	"time"

	"expense-tracker/internal/model"
)

// 省略的欄位維持原值
// swagger:model api.SettingsRequest
type SettingsRequest struct {
	Theme         *string         `json:"theme" example:"dark"`
	Language      *string         `json:"language" example:"en"`
	Currency      *string         `json:"currency" example:"EUR"`
	DateFormat    *string         `json:"dateFormat" example:"YYYY-MM-DD"`
	Notifications map[string]bool `json:"notifications"`
}

func (r SettingsRequest) Patch() model.SettingsPatch {
	return model.SettingsPatch{
		Theme:         r.Theme,
		Language:      r.Language,
		Currency:      r.Currency,
		DateFormat:    r.DateFormat,
		Notifications: r.Notifications,
	}
}

// swagger:model api.SettingsResponse
type SettingsResponse struct {
	Theme         string          `json:"theme" example:"system"`
	Language      string          `json:"language" example:"es"`
	Currency      string          `json:"currency" example:"USD"`
	DateFormat    string          `json:"dateFormat" example:"DD/MM/YYYY"`
	Notifications map[string]bool `json:"notifications"`
}

func NewSettingsResponse(s *model.Settings) SettingsResponse {
	n := s.Notifications
	if n == nil {
		n = map[string]bool{}
	}
	return SettingsResponse{
		Theme:         s.Theme,
		Language:      s.Language,
		Currency:      s.Currency,
		DateFormat:    s.DateFormat,
		Notifications: n,
	}
}

// swagger:model api.SettingsMessageResponse
type SettingsMessageResponse struct {
	Message  string           `json:"message" example:"settings updated successfully"`
	Settings SettingsResponse `json:"settings"`
}

// swagger:model api.ProfileRequest
type ProfileRequest struct {
	Name  *string `json:"name" example:"Alice"`
	Email *string `json:"email" validate:"omitempty,max=255" example:"alice@example.com"`
}

// name 即 username
// swagger:model api.ProfileUser
type ProfileUser struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T15:04:05Z"`
}

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Message string      `json:"message" example:"profile updated successfully"`
	User    ProfileUser `json:"user"`
}

func NewProfileResponse(msg string, u *model.User) ProfileResponse {
	return ProfileResponse{
		Message: msg,
		User:    ProfileUser{ID: u.ID, Name: u.Username, Email: u.Email, CreatedAt: u.CreatedAt},
	}
}

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"secret1"`
	NewPassword     string `json:"newPassword" validate:"max=72" example:"secret2"`
}
