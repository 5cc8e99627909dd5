package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"max=50" example:"alice"`
	Email    string `json:"email" form:"email" validate:"max=255" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"max=72" example:"secret1"`
}
