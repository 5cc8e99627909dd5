package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker/internal/cache"
	"expense-tracker/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, Options{LoginRateLimit: 10, LoginRateWindow: time.Minute})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodGet + " /api/categories",
		http.MethodPost + " /api/categories",
		http.MethodGet + " /api/categories/stats",
		http.MethodPut + " /api/categories/:id",
		http.MethodDelete + " /api/categories/:id",
		http.MethodGet + " /api/expenses",
		http.MethodPost + " /api/expenses",
		http.MethodPut + " /api/expenses/:id",
		http.MethodDelete + " /api/expenses/:id",
		http.MethodGet + " /api/expenses/stats/summary",
		http.MethodGet + " /api/expenses/stats/period",
		http.MethodGet + " /api/expenses/stats/categories",
		http.MethodGet + " /api/expenses/stats/monthly",
		http.MethodGet + " /api/settings",
		http.MethodPut + " /api/settings",
		http.MethodPut + " /api/settings/profile",
		http.MethodPut + " /api/settings/password",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, nil, Options{})

	for _, target := range []string{"/api/categories", "/api/expenses", "/api/expenses/stats/summary", "/api/settings", "/api/auth/me"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		require.JSONEq(t, `{"message":"access token required"}`, rec.Body.String())
	}
}
