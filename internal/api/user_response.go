package api

import (
	"time"

	"expense-tracker/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	Message string       `json:"message" example:"user created successfully"`
	User    UserResponse `json:"user"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message string       `json:"message" example:"login successful"`
	Token   string       `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User    UserResponse `json:"user"`
}

// swagger:model api.MeResponse
type MeResponse struct {
	User UserResponse `json:"user"`
}
