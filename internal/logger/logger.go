package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// 結構化日誌共用欄位
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldURI       = "uri"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldRemoteIP  = "remote_ip"
	FieldUserID    = "user_id"
	FieldError     = "error"
)

const (
	ComponentApp  = "app"
	ComponentHTTP = "http"
	ComponentAuth = "auth"
)

// Options 建立 logger 的參數
type Options struct {
	Level     string // debug | info | warn | error
	Format    string // text | json
	Component string
	Writer    io.Writer
}

// ParseLevel 無法辨識時回傳 info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New 依設定建立 slog.Logger；Writer 為 nil 時寫到 stdout
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}

	l := slog.New(h)
	if opts.Component != "" {
		l = l.With(FieldComponent, opts.Component)
	}
	return l
}

// WithComponent 取得帶 component 欄位的子 logger
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(FieldComponent, component)
}
