package settings

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
	getSettings    = service.GetSettings
	updateSettings = service.UpdateSettings
	updateProfile  = service.UpdateProfile
	changePassword = service.ChangePassword
)

// GetHandler 回傳使用者設定，未儲存過時回傳預設值
// @Summary     取得設定
// @Tags        settings
// @Produce     json
// @Success     200 {object} api.SettingsResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /settings [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		s, err := getSettings(c.Request().Context(), db, user.ID)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewSettingsResponse(s))
	}
}

// UpdateHandler 部分更新設定；notifications 逐鍵合併
// @Summary     更新設定
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       body body     api.SettingsRequest true "要更新的欄位"
// @Success     200  {object} api.SettingsMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /settings [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SettingsRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}

		user := middleware.CurrentUser(c)
		s, err := updateSettings(c.Request().Context(), db, user.ID, req.Patch())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.SettingsMessageResponse{
			Message:  "settings updated successfully",
			Settings: api.NewSettingsResponse(s),
		})
	}
}

// ProfileHandler 更新名稱（username）與 email
// @Summary     更新個人資料
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       body body     api.ProfileRequest true "要更新的欄位"
// @Success     200  {object} api.ProfileResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /settings/profile [put]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProfileRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		updated, err := updateProfile(c.Request().Context(), db, user.ID, req.Name, req.Email)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProfileResponse("profile updated successfully", updated))
	}
}

// PasswordHandler 驗證目前密碼後更換密碼
// @Summary     更換密碼
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       body body     api.ChangePasswordRequest true "目前與新密碼"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse "缺少欄位、新密碼太短或目前密碼錯誤"
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /settings/password [put]
func PasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		if err := changePassword(c.Request().Context(), db, user.ID, req.CurrentPassword, req.NewPassword); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated successfully"})
	}
}
