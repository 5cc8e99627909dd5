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
	listExpenses  = service.ListExpenses
	createExpense = service.CreateExpense
	updateExpense = service.UpdateExpense
	deleteExpense = service.DeleteExpense
)

// ListHandler 分頁列出支出
// @Summary     列出支出
// @Description sortBy 僅接受 date、amount、description、created_at；不合法時以 date DESC 排序
// @Tags        expenses
// @Produce     json
// @Param       page      query    int    false "頁碼（預設 1）"
// @Param       limit     query    int    false "每頁筆數（預設 10，上限 100）"
// @Param       category  query    int    false "分類 ID"
// @Param       startDate query    string false "起日 YYYY-MM-DD"
// @Param       endDate   query    string false "迄日 YYYY-MM-DD"
// @Param       sortBy    query    string false "排序欄位"
// @Param       sortOrder query    string false "ASC 或 DESC"
// @Success     200       {object} api.ExpenseListResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f, err := api.ExpenseFilterQuery(c)
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		list, page, err := listExpenses(c.Request().Context(), db, user.ID, f)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewExpenseList(list, page))
	}
}

// CreateHandler 新增支出
// @Summary     新增支出
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       body body     api.ExpenseRequest true "支出資料"
// @Success     201  {object} api.ExpenseMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse "分類不存在或不屬於自己"
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ExpenseRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		e, err := createExpense(c.Request().Context(), db, user.ID, req.Input())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.ExpenseMessageResponse{
			Message: "expense created successfully",
			Expense: api.NewExpenseResponse(e),
		})
	}
}

// UpdateHandler 更新支出（所有欄位必填）
// @Summary     更新支出
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "支出 ID"
// @Param       body body     api.ExpenseRequest true "支出資料"
// @Success     200  {object} api.ExpenseMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.PathID(c, "expense")
		if err != nil {
			return api.Error(c, err)
		}
		var req api.ExpenseRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		e, err := updateExpense(c.Request().Context(), db, id, user.ID, req.Input())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.ExpenseMessageResponse{
			Message: "expense updated successfully",
			Expense: api.NewExpenseResponse(e),
		})
	}
}

// DeleteHandler 刪除支出
// @Summary     刪除支出
// @Tags        expenses
// @Produce     json
// @Param       id  path     int true "支出 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /expenses/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.PathID(c, "expense")
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		if err := deleteExpense(c.Request().Context(), db, id, user.ID); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "expense deleted successfully"})
	}
}
