// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"expense-tracker/internal/api"
	"expense-tracker/internal/cache"
	"expense-tracker/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis（有設定時）連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if rdb != nil {
			if err := rdb.Set(ctx, "ping", "pong", 10*time.Second).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
