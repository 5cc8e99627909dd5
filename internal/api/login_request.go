package api

// 登入接受 JSON 或表單；username 欄位可填 username 或 email
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" example:"alice"`
	Password string `json:"password" form:"password" example:"secret1"`
}
