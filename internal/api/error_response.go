package api

import (
	"errors"
	"log/slog"
	"net/http"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/logger"
	"expense-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ErrorResponse 全域錯誤回應
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"category not found"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"expense deleted successfully"`
}

// Error 依錯誤分類寫出 {"message": ...}；500 只記錄細節，不回傳給客戶端
func Error(c echo.Context, err error) error {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		attrs := []any{
			logger.FieldMethod, c.Request().Method,
			logger.FieldURI, c.Request().RequestURI,
			logger.FieldRequestID, c.Response().Header().Get(echo.HeaderXRequestID),
			logger.FieldError, err.Error(),
		}
		if u := middleware.CurrentUser(c); u != nil {
			attrs = append(attrs, logger.FieldUserID, u.ID)
		}
		slog.Error("request failed", attrs...)
	}
	return c.JSON(status, ErrorResponse{Message: apperror.PublicMessage(err)})
}

// BindError 請求內容無法解析時的回應；保留 binder 的說明文字
func BindError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok || msg == "" {
			msg = "invalid request body"
		}
		if he.Code == http.StatusUnsupportedMediaType {
			return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Message: msg})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
}
