package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Component: ComponentApp, Writer: &buf})
	l.Debug("hidden")
	l.Info("started", "port", "8080")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "started", entry["msg"])
	require.Equal(t, ComponentApp, entry[FieldComponent])
	require.Equal(t, "8080", entry["port"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Writer: &buf})
	WithComponent(l, ComponentAuth).Debug("query")
	require.Contains(t, buf.String(), "component=auth")
	require.Contains(t, buf.String(), "msg=query")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: "json", Writer: &buf})

	e := echo.New()
	e.Use(RequestLogger(l))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return c.JSON(http.StatusNotFound, map[string]string{"message": "nope"}) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "/ok", entry[FieldURI])
	require.EqualValues(t, 200, entry[FieldStatus])
	require.Equal(t, "rid-1", entry[FieldRequestID])
	require.Equal(t, ComponentHTTP, entry[FieldComponent])

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "WARN", entry["level"])
	require.EqualValues(t, 404, entry[FieldStatus])
}
