package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/logger"
	"expense-tracker/internal/model"
	"expense-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試可覆寫
var authenticate = service.Authenticate

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "access token required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "access token required")
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 缺少令牌回 401；令牌無效、過期或使用者已不存在回 403
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			user, err := authenticate(c.Request().Context(), db, token)
			if err != nil {
				if apperror.KindOf(err) == apperror.KindInternal {
					logger.WithComponent(slog.Default(), logger.ComponentAuth).Error("authenticate failed", logger.FieldError, err.Error())
				}
				return echo.NewHTTPError(apperror.StatusCode(err), apperror.PublicMessage(err)).SetInternal(err)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入的使用者；未經過 RequireAuth 時回傳 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
