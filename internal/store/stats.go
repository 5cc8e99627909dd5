package store

import (
	"context"
	"fmt"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// 每種週期的分組標籤，皆為可依字串排序的格式
var periodLabels = map[model.Period]string{
	model.PeriodDaily:   `to_char(date, 'YYYY-MM-DD')`,
	model.PeriodWeekly:  `to_char(date, 'IYYY-"W"IW')`,
	model.PeriodMonthly: `to_char(date, 'YYYY-MM')`,
	model.PeriodYearly:  `to_char(date, 'YYYY')`,
}

// ValidPeriod 是否為支援的統計週期
func ValidPeriod(p model.Period) bool {
	_, ok := periodLabels[p]
	return ok
}

// ExpenseSummary 區間內的筆數、總額、平均、最大、最小；無資料時皆為 0
func ExpenseSummary(ctx context.Context, db database.DB, userID int, r model.DateRange) (model.Summary, error) {
	var s model.Summary
	err := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(amount), 0),
		        COALESCE(ROUND(AVG(amount), 2), 0),
		        COALESCE(MAX(amount), 0),
		        COALESCE(MIN(amount), 0)
		 FROM expenses
		 WHERE user_id = $1
		   AND ($2::date IS NULL OR date >= $2::date)
		   AND ($3::date IS NULL OR date <= $3::date)`,
		userID,
		r.From,
		r.To,
	).Scan(&s.Count, &s.Total, &s.Average, &s.Max, &s.Min)
	if err != nil {
		return model.Summary{}, wrap("ExpenseSummary", err)
	}
	return s, nil
}

// MonthTotal monthStart 所在月份的支出總額
func MonthTotal(ctx context.Context, db database.DB, userID int, monthStart time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM expenses
		 WHERE user_id = $1
		   AND date >= $2::date
		   AND date < ($2::date + INTERVAL '1 month')`,
		userID,
		monthStart,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, wrap("MonthTotal", err)
	}
	return total, nil
}

// AveragePerMonth 有支出的月份之月總額平均
func AveragePerMonth(ctx context.Context, db database.DB, userID int) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := db.QueryRow(ctx,
		`SELECT COALESCE(ROUND(AVG(monthly_total), 2), 0)
		 FROM (
		   SELECT SUM(amount) AS monthly_total
		   FROM expenses
		   WHERE user_id = $1
		   GROUP BY date_trunc('month', date)
		 ) m`,
		userID,
	).Scan(&avg)
	if err != nil {
		return decimal.Zero, wrap("AveragePerMonth", err)
	}
	return avg, nil
}

// ExpensesByPeriod 依週期分組，最新的在前
func ExpensesByPeriod(ctx context.Context, db database.DB, userID int, period model.Period, r model.DateRange) ([]model.PeriodStat, error) {
	label, ok := periodLabels[period]
	if !ok {
		return nil, fmt.Errorf("ExpensesByPeriod: unsupported period %q", period)
	}
	rows, err := db.Query(ctx,
		fmt.Sprintf(
			`SELECT %s AS period, COUNT(*), SUM(amount)
			 FROM expenses
			 WHERE user_id = $1
			   AND ($2::date IS NULL OR date >= $2::date)
			   AND ($3::date IS NULL OR date <= $3::date)
			 GROUP BY 1
			 ORDER BY 1 DESC`,
			label,
		),
		userID,
		r.From,
		r.To,
	)
	if err != nil {
		return nil, wrap("ExpensesByPeriod", err)
	}
	defer rows.Close()

	stats := []model.PeriodStat{}
	for rows.Next() {
		var s model.PeriodStat
		if err := rows.Scan(&s.Period, &s.Count, &s.Total); err != nil {
			return nil, wrap("ExpensesByPeriod", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ExpensesByPeriod", err)
	}
	return stats, nil
}

// MonthlyStats from 起（含）每月的筆數、總額、平均，最新的在前
func MonthlyStats(ctx context.Context, db database.DB, userID int, from time.Time) ([]model.MonthlyStat, error) {
	rows, err := db.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month,
		        COUNT(*),
		        SUM(amount),
		        ROUND(AVG(amount), 2)
		 FROM expenses
		 WHERE user_id = $1 AND date >= $2::date
		 GROUP BY 1
		 ORDER BY 1 DESC`,
		userID,
		from,
	)
	if err != nil {
		return nil, wrap("MonthlyStats", err)
	}
	defer rows.Close()

	stats := []model.MonthlyStat{}
	for rows.Next() {
		var s model.MonthlyStat
		if err := rows.Scan(&s.Month, &s.Count, &s.Total, &s.Average); err != nil {
			return nil, wrap("MonthlyStats", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("MonthlyStats", err)
	}
	return stats, nil
}

// CategoryBreakdownStats 有支出的分類在區間內的明細統計，總額高的在前
func CategoryBreakdownStats(ctx context.Context, db database.DB, userID int, r model.DateRange) ([]model.CategoryBreakdown, error) {
	rows, err := db.Query(ctx,
		`SELECT e.category_id, c.name, c.color,
		        COUNT(*),
		        SUM(e.amount) AS total,
		        ROUND(AVG(e.amount), 2),
		        MIN(e.amount),
		        MAX(e.amount)
		 FROM expenses e
		 JOIN categories c ON c.id = e.category_id
		 WHERE e.user_id = $1
		   AND ($2::date IS NULL OR e.date >= $2::date)
		   AND ($3::date IS NULL OR e.date <= $3::date)
		 GROUP BY e.category_id, c.name, c.color
		 ORDER BY total DESC, c.name`,
		userID,
		r.From,
		r.To,
	)
	if err != nil {
		return nil, wrap("CategoryBreakdownStats", err)
	}
	defer rows.Close()

	stats := []model.CategoryBreakdown{}
	for rows.Next() {
		var s model.CategoryBreakdown
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.CategoryColor,
			&s.Count, &s.Total, &s.Average, &s.Min, &s.Max); err != nil {
			return nil, wrap("CategoryBreakdownStats", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("CategoryBreakdownStats", err)
	}
	return stats, nil
}
