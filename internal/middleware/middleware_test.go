package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
	require.Equal(t, msg, he.Message)
}

func TestBearerToken(t *testing.T) {
	for _, header := range []string{"", "BadHeader", "Basic abc", "Bearer ", "Bearer    "} {
		ctx, _ := newContext(header)
		_, err := bearerToken(ctx)
		requireHTTPError(t, err, http.StatusUnauthorized, "access token required")
	}

	ctx, _ := newContext("bearer abc.def")
	tok, err := bearerToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc.def", tok)
}

func TestRequireAuth(t *testing.T) {
	t.Cleanup(func() { authenticate = service.Authenticate })

	t.Run("missing token is 401", func(t *testing.T) {
		ctx, _ := newContext("")
		called := false
		err := RequireAuth(nil)(func(echo.Context) error { called = true; return nil })(ctx)
		requireHTTPError(t, err, http.StatusUnauthorized, "access token required")
		require.False(t, called)
	})

	t.Run("invalid token is 403", func(t *testing.T) {
		authenticate = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, apperror.Wrap(apperror.KindForbidden, "invalid or expired token", errors.New("expired"))
		}
		ctx, _ := newContext("Bearer x")
		err := RequireAuth(nil)(func(echo.Context) error { return nil })(ctx)
		requireHTTPError(t, err, http.StatusForbidden, "invalid or expired token")
	})

	t.Run("configuration error is 500", func(t *testing.T) {
		authenticate = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("JWT_SECRET not set")
		}
		ctx, _ := newContext("Bearer x")
		err := RequireAuth(nil)(func(echo.Context) error { return nil })(ctx)
		requireHTTPError(t, err, http.StatusInternalServerError, "internal server error")
	})

	t.Run("ok sets current user", func(t *testing.T) {
		authenticate = func(_ context.Context, _ database.DB, token string) (*model.User, error) {
			require.Equal(t, "good", token)
			return &model.User{ID: 2, Username: "alice"}, nil
		}
		ctx, rec := newContext("Bearer good")
		err := RequireAuth(nil)(func(c echo.Context) error {
			u := CurrentUser(c)
			require.NotNil(t, u)
			require.Equal(t, 2, u.ID)
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAuthWithRealToken(t *testing.T) {
	t.Cleanup(func() { authenticate = service.Authenticate })
	t.Setenv("JWT_SECRET", "secret")

	tok, err := service.IssueAccessToken(model.User{ID: 7}, service.TokenTTL)
	require.NoError(t, err)

	db := &database.FakeDB{}
	authenticate = func(ctx context.Context, d database.DB, token string) (*model.User, error) {
		claims, err := service.VerifyAccessToken(token)
		if err != nil {
			return nil, apperror.Forbidden("invalid or expired token")
		}
		return &model.User{ID: claims.ID}, nil
	}

	ctx, _ := newContext("Bearer " + tok)
	var got *model.User
	require.NoError(t, RequireAuth(db)(func(c echo.Context) error {
		got = CurrentUser(c)
		return nil
	})(ctx))
	require.Equal(t, 7, got.ID)
}

func TestCurrentUserMissing(t *testing.T) {
	ctx, _ := newContext("")
	require.Nil(t, CurrentUser(ctx))
}
