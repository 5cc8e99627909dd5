package api

import (
	"strconv"
	"strings"
	"time"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/model"
	"expense-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

func queryDate(c echo.Context, name string) (*time.Time, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(service.DateLayout, v)
	if err != nil {
		return nil, apperror.Validation(name + " must be in YYYY-MM-DD format")
	}
	return &t, nil
}

// DateRangeQuery 讀取 startDate / endDate，皆為選填
func DateRangeQuery(c echo.Context) (model.DateRange, error) {
	from, err := queryDate(c, "startDate")
	if err != nil {
		return model.DateRange{}, err
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return model.DateRange{}, err
	}
	return model.DateRange{From: from, To: to}, nil
}

func queryInt(c echo.Context, name string) (int, bool, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, apperror.Validation(name + " must be an integer")
	}
	return n, true, nil
}

// ExpenseFilterQuery ?page&limit&category&startDate&endDate&sortBy&sortOrder
func ExpenseFilterQuery(c echo.Context) (model.ExpenseFilter, error) {
	var f model.ExpenseFilter
	var err error

	if f.Page, _, err = queryInt(c, "page"); err != nil {
		return f, err
	}
	if f.Limit, _, err = queryInt(c, "limit"); err != nil {
		return f, err
	}
	cat, ok, err := queryInt(c, "category")
	if err != nil {
		return f, err
	}
	if ok {
		f.CategoryID = &cat
	}
	if f.DateRange, err = DateRangeQuery(c); err != nil {
		return f, err
	}
	f.SortBy = c.QueryParam("sortBy")
	f.SortOrder = c.QueryParam("sortOrder")
	return f, nil
}

// PathID 解析路徑上的 :id
func PathID(c echo.Context, what string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid " + what + " ID")
	}
	return id, nil
}
