// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"expense-tracker/internal/cache"
	"expense-tracker/internal/database"
	"expense-tracker/internal/handler"
	"expense-tracker/internal/handler/auth"
	"expense-tracker/internal/handler/categories"
	"expense-tracker/internal/handler/expenses"
	"expense-tracker/internal/handler/settings"
	"expense-tracker/internal/middleware"
)

// Options 路由層可調整的參數
type Options struct {
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Setup 註冊所有路由與中介層；rdb 可為 nil
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, opts Options) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(db)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 註冊、登入、目前使用者
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db), middleware.LoginThrottle(rdb, opts.LoginRateLimit, opts.LoginRateWindow))
	apiAuth.GET("/me", auth.MeHandler(), requireAuth)

	// 分類；/stats 需在 /:id 之前註冊
	apiCategories := api.Group("/categories", requireAuth)
	apiCategories.GET("", categories.ListHandler(db))
	apiCategories.POST("", categories.CreateHandler(db))
	apiCategories.GET("/stats", categories.StatsHandler(db))
	apiCategories.PUT("/:id", categories.UpdateHandler(db))
	apiCategories.DELETE("/:id", categories.DeleteHandler(db))

	// 支出與統計
	apiExpenses := api.Group("/expenses", requireAuth)
	apiExpenses.GET("", expenses.ListHandler(db))
	apiExpenses.POST("", expenses.CreateHandler(db))
	apiExpenses.PUT("/:id", expenses.UpdateHandler(db))
	apiExpenses.DELETE("/:id", expenses.DeleteHandler(db))
	apiExpenses.GET("/stats/summary", expenses.SummaryHandler(db))
	apiExpenses.GET("/stats/period", expenses.PeriodHandler(db))
	apiExpenses.GET("/stats/categories", expenses.CategoriesHandler(db))
	apiExpenses.GET("/stats/monthly", expenses.MonthlyHandler(db))

	// 使用者設定、個人資料、密碼
	apiSettings := api.Group("/settings", requireAuth)
	apiSettings.GET("", settings.GetHandler(db))
	apiSettings.PUT("", settings.UpdateHandler(db))
	apiSettings.PUT("/profile", settings.ProfileHandler(db))
	apiSettings.PUT("/password", settings.PasswordHandler(db))
}
