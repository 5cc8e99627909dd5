package auth

import (
	"net/http"

	"expense-tracker/internal/api"
	"expense-tracker/internal/database"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫
var (
	register = service.Register
	login    = service.Login
)

// RegisterHandler 建立帳號並建立預設分類
// @Summary     註冊使用者
// @Description 建立帳號（email 轉小寫），同時建立七個預設分類
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.RegisterResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user, err := register(c.Request().Context(), db, req.Username, req.Email, req.Password)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Message: "user created successfully",
			User:    api.NewUserResponse(user),
		})
	}
}

// LoginHandler 使用 username（或 email）與密碼登入並回傳 JWT
// @Summary     登入使用者
// @Description 驗證帳號密碼，回傳 24 小時有效的存取令牌
// @Tags        auth
// @Accept      json,application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}

		token, user, err := login(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			Message: "login successful",
			Token:   token,
			User:    api.NewUserResponse(user),
		})
	}
}

// MeHandler 回傳目前登入的使用者
// @Summary     取得目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MeResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "access token required"})
		}
		return c.JSON(http.StatusOK, api.MeResponse{User: api.NewUserResponse(user)})
	}
}
