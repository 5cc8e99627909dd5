package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"expense-tracker/internal/cache"
	"expense-tracker/internal/logger"

	"github.com/labstack/echo/v4"
)

const loginKeyPrefix = "login_attempts:"

// LoginThrottle 以 Redis 固定視窗計數每個 IP 的登入次數。
// IP 取自 echo 的 IPExtractor，須由呼叫端設定成不信任客戶端自帶的轉發標頭。
// cache 為 nil 或 limit <= 0 時不做任何限制；Redis 失敗時放行。
func LoginThrottle(c cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if c == nil || limit <= 0 {
			return next
		}
		log := logger.WithComponent(slog.Default(), logger.ComponentAuth)
		return func(ctx echo.Context) error {
			reqCtx := ctx.Request().Context()
			ip := ctx.RealIP()
			key := loginKeyPrefix + ip

			n, err := c.Incr(reqCtx, key).Result()
			if err != nil {
				log.Warn("login throttle unavailable", logger.FieldError, err.Error())
				return next(ctx)
			}
			if n == 1 {
				if err := c.Expire(reqCtx, key, window).Err(); err != nil {
					log.Warn("login throttle expire failed", logger.FieldError, err.Error())
				}
			}
			if n > int64(limit) {
				log.Info("login throttled", logger.FieldRemoteIP, ip, "attempts", n)
				ctx.Response().Header().Set("Retry-After", retryAfter(window))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}
			return next(ctx)
		}
	}
}

func retryAfter(window time.Duration) string {
	secs := int(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
