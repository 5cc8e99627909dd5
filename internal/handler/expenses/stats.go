package expenses

import (
	"net/http"

	"expense-tracker/internal/api"
	"expense-tracker/internal/database"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫
var (
	summary           = service.Summary
	expensesByPeriod  = service.ExpensesByPeriod
	categoryBreakdown = service.CategoryBreakdown
	monthlyStats      = service.MonthlyStats
)

// SummaryHandler 筆數、總額、平均、最大、最小、本月總額、月平均
// @Summary     支出摘要
// @Tags        stats
// @Produce     json
// @Param       startDate query    string false "起日 YYYY-MM-DD"
// @Param       endDate   query    string false "迄日 YYYY-MM-DD"
// @Success     200       {object} api.SummaryResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/stats/summary [get]
func SummaryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := api.DateRangeQuery(c)
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		s, err := summary(c.Request().Context(), db, user.ID, r)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewSummaryResponse(s))
	}
}

// PeriodHandler 依日／週／月／年分組
// @Summary     週期統計
// @Tags        stats
// @Produce     json
// @Param       period    query    string false "daily | weekly | monthly | yearly（預設 monthly）"
// @Param       startDate query    string false "起日 YYYY-MM-DD"
// @Param       endDate   query    string false "迄日 YYYY-MM-DD"
// @Success     200       {array}  api.PeriodStatResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/stats/period [get]
func PeriodHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := api.DateRangeQuery(c)
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		stats, err := expensesByPeriod(c.Request().Context(), db, user.ID, c.QueryParam("period"), r)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPeriodStats(stats))
	}
}

// CategoriesHandler 本月、本年或全部期間的分類明細
// @Summary     分類明細
// @Tags        stats
// @Produce     json
// @Param       period query    string false "month | year | all（預設 month）"
// @Success     200    {array}  api.CategoryBreakdownResponse
// @Failure     400    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/stats/categories [get]
func CategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		stats, err := categoryBreakdown(c.Request().Context(), db, user.ID, c.QueryParam("period"))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewCategoryBreakdown(stats))
	}
}

// MonthlyHandler 最近 12 個月
// @Summary     月統計
// @Tags        stats
// @Produce     json
// @Success     200 {array}  api.MonthlyStatResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/stats/monthly [get]
func MonthlyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		stats, err := monthlyStats(c.Request().Context(), db, user.ID)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewMonthlyStats(stats))
	}
}
