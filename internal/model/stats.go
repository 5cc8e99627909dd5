// File: internal/model/stats.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange 兩端皆為選填且各自獨立套用（含端點）
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type Summary struct {
	Count       int
	Total       decimal.Decimal
	Average     decimal.Decimal
	Max         decimal.Decimal
	Min         decimal.Decimal
	ThisMonth   decimal.Decimal
	AvgPerMonth decimal.Decimal
}

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

type PeriodStat struct {
	Period string
	Count  int
	Total  decimal.Decimal
}

type MonthlyStat struct {
	Month   string
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
}

type CategoryBreakdown struct {
	CategoryID    int
	CategoryName  string
	CategoryColor string
	Count         int
	Total         decimal.Decimal
	Average       decimal.Decimal
	Min           decimal.Decimal
	Max           decimal.Decimal
}
