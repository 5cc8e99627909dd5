package logger

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestLogger 把每個請求寫成一筆 slog 紀錄，5xx 用 Error，4xx 用 Warn
func RequestLogger(l *slog.Logger) echo.MiddlewareFunc {
	l = WithComponent(l, ComponentHTTP)
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String(FieldMethod, v.Method),
				slog.String(FieldURI, v.URI),
				slog.Int(FieldStatus, v.Status),
				slog.Int64(FieldLatency, v.Latency.Milliseconds()),
				slog.String(FieldRequestID, v.RequestID),
				slog.String(FieldRemoteIP, v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String(FieldError, v.Error.Error()))
			}

			level := slog.LevelInfo
			switch {
			case v.Status >= 500:
				level = slog.LevelError
			case v.Status >= 400:
				level = slog.LevelWarn
			}
			l.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
