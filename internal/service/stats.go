package service

import (
	"context"
	"strings"
	"time"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"

	"golang.org/x/sync/errgroup"
)

// 測試可覆寫
var (
	expenseSummary         = store.ExpenseSummary
	monthTotal             = store.MonthTotal
	averagePerMonth        = store.AveragePerMonth
	expensesByPeriod       = store.ExpensesByPeriod
	monthlyStats           = store.MonthlyStats
	categoryBreakdownStats = store.CategoryBreakdownStats
)

// Breakdown scopes for CategoryBreakdown.
const (
	ScopeMonth = "month"
	ScopeYear  = "year"
	ScopeAll   = "all"
)

func checkRange(r model.DateRange) error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return apperror.Validation("startDate must not be after endDate")
	}
	return nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Summary 三個彙總查詢並行執行，任一失敗即回傳錯誤
func Summary(ctx context.Context, db database.DB, userID int, r model.DateRange) (model.Summary, error) {
	if err := checkRange(r); err != nil {
		return model.Summary{}, err
	}

	var s model.Summary
	current := monthStart(timeNow().UTC())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		base, err := expenseSummary(gctx, db, userID, r)
		if err != nil {
			return err
		}
		s.Count, s.Total, s.Average, s.Max, s.Min = base.Count, base.Total, base.Average, base.Max, base.Min
		return nil
	})
	g.Go(func() error {
		total, err := monthTotal(gctx, db, userID, current)
		s.ThisMonth = total
		return err
	})
	g.Go(func() error {
		avg, err := averagePerMonth(gctx, db, userID)
		s.AvgPerMonth = avg
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Summary{}, err
	}
	return s, nil
}

// ExpensesByPeriod period 空字串視為 monthly，其餘不支援的值回傳 Validation
func ExpensesByPeriod(ctx context.Context, db database.DB, userID int, period string, r model.DateRange) ([]model.PeriodStat, error) {
	p := model.Period(strings.ToLower(strings.TrimSpace(period)))
	if p == "" {
		p = model.PeriodMonthly
	}
	if !store.ValidPeriod(p) {
		return nil, apperror.Validation("period must be one of daily, weekly, monthly, yearly")
	}
	if err := checkRange(r); err != nil {
		return nil, err
	}
	return expensesByPeriod(ctx, db, userID, p, r)
}

// MonthlyStats 最近 12 個日曆月（含本月）
func MonthlyStats(ctx context.Context, db database.DB, userID int) ([]model.MonthlyStat, error) {
	from := monthStart(timeNow().UTC()).AddDate(0, -11, 0)
	return monthlyStats(ctx, db, userID, from)
}

// BreakdownRange 把 month/year/all 轉成日期區間（以 UTC 日曆計算）
func BreakdownRange(scope string, now time.Time) (model.DateRange, error) {
	switch strings.ToLower(strings.TrimSpace(scope)) {
	case "", ScopeMonth:
		from := monthStart(now)
		to := from.AddDate(0, 1, -1)
		return model.DateRange{From: &from, To: &to}, nil
	case ScopeYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return model.DateRange{From: &from, To: &to}, nil
	case ScopeAll:
		return model.DateRange{}, nil
	default:
		return model.DateRange{}, apperror.Validation("period must be one of month, year, all")
	}
}

// CategoryBreakdown 本月／本年／全部期間的分類明細
func CategoryBreakdown(ctx context.Context, db database.DB, userID int, scope string) ([]model.CategoryBreakdown, error) {
	r, err := BreakdownRange(scope, timeNow().UTC())
	if err != nil {
		return nil, err
	}
	return categoryBreakdownStats(ctx, db, userID, r)
}
