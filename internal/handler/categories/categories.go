package categories

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
	listCategories = service.ListCategories
	createCategory = service.CreateCategory
	updateCategory = service.UpdateCategory
	deleteCategory = service.DeleteCategory
	categoryStats  = service.CategoryStats
)

// ListHandler 依名稱排序列出自己的分類
// @Summary     列出分類
// @Tags        categories
// @Produce     json
// @Success     200 {array}  api.CategoryResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /categories [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		list, err := listCategories(c.Request().Context(), db, user.ID)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewCategoryList(list))
	}
}

// CreateHandler 建立分類，顏色預設 #3498db
// @Summary     建立分類
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       body body     api.CategoryRequest true "分類資料"
// @Success     201  {object} api.CategoryMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse "名稱重複"
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /categories [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		cat, err := createCategory(c.Request().Context(), db, user.ID, req.Input())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.CategoryMessageResponse{
			Message:  "category created successfully",
			Category: api.NewCategoryResponse(cat),
		})
	}
}

// UpdateHandler 部分更新分類
// @Summary     更新分類
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id   path     int                 true "分類 ID"
// @Param       body body     api.CategoryRequest true "要更新的欄位"
// @Success     200  {object} api.CategoryMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /categories/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.PathID(c, "category")
		if err != nil {
			return api.Error(c, err)
		}
		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return api.BindError(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return api.Error(c, err)
		}

		user := middleware.CurrentUser(c)
		cat, err := updateCategory(c.Request().Context(), db, id, user.ID, req.Input())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.CategoryMessageResponse{
			Message:  "category updated successfully",
			Category: api.NewCategoryResponse(cat),
		})
	}
}

// DeleteHandler 刪除沒有支出的分類
// @Summary     刪除分類
// @Tags        categories
// @Produce     json
// @Param       id  path     int true "分類 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "仍有支出使用此分類"
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /categories/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.PathID(c, "category")
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		if err := deleteCategory(c.Request().Context(), db, id, user.ID); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "category deleted successfully"})
	}
}

// StatsHandler 每個分類的總額與筆數
// @Summary     分類統計
// @Tags        categories
// @Produce     json
// @Param       startDate query    string false "起日 YYYY-MM-DD"
// @Param       endDate   query    string false "迄日 YYYY-MM-DD"
// @Success     200       {array}  api.CategoryStatResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /categories/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := api.DateRangeQuery(c)
		if err != nil {
			return api.Error(c, err)
		}
		user := middleware.CurrentUser(c)
		stats, err := categoryStats(c.Request().Context(), db, user.ID, r)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewCategoryStats(stats))
	}
}
