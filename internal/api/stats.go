package api

import "expense-tracker/internal/model"

// 後半段欄位是儀表板使用的別名，值與前面相同
// swagger:model api.SummaryResponse
type SummaryResponse struct {
	Count       int     `json:"count" example:"1"`
	Total       float64 `json:"total" example:"12.5"`
	Average     float64 `json:"average" example:"12.5"`
	Max         float64 `json:"max" example:"12.5"`
	Min         float64 `json:"min" example:"12.5"`
	ThisMonth   float64 `json:"thisMonth" example:"12.5"`
	AvgPerMonth float64 `json:"avgPerMonth" example:"12.5"`

	TotalExpenses  int     `json:"totalExpenses" example:"1"`
	TotalAmount    float64 `json:"totalAmount" example:"12.5"`
	AverageExpense float64 `json:"averageExpense" example:"12.5"`
	MaxExpense     float64 `json:"maxExpense" example:"12.5"`
	MinExpense     float64 `json:"minExpense" example:"12.5"`
}

func NewSummaryResponse(s model.Summary) SummaryResponse {
	r := SummaryResponse{
		Count:       s.Count,
		Total:       money(s.Total),
		Average:     money(s.Average),
		Max:         money(s.Max),
		Min:         money(s.Min),
		ThisMonth:   money(s.ThisMonth),
		AvgPerMonth: money(s.AvgPerMonth),
	}
	r.TotalExpenses = r.Count
	r.TotalAmount = r.Total
	r.AverageExpense = r.Average
	r.MaxExpense = r.Max
	r.MinExpense = r.Min
	return r
}

// swagger:model api.PeriodStatResponse
type PeriodStatResponse struct {
	Period       string  `json:"period" example:"2024-05"`
	ExpenseCount int     `json:"expense_count" example:"4"`
	TotalAmount  float64 `json:"total_amount" example:"80.25"`
}

func NewPeriodStats(stats []model.PeriodStat) []PeriodStatResponse {
	out := make([]PeriodStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, PeriodStatResponse{Period: s.Period, ExpenseCount: s.Count, TotalAmount: money(s.Total)})
	}
	return out
}

// swagger:model api.MonthlyStatResponse
type MonthlyStatResponse struct {
	Month   string  `json:"month" example:"2024-05"`
	Count   int     `json:"count" example:"4"`
	Total   float64 `json:"total" example:"80.25"`
	Average float64 `json:"average" example:"20.06"`
}

func NewMonthlyStats(stats []model.MonthlyStat) []MonthlyStatResponse {
	out := make([]MonthlyStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, MonthlyStatResponse{
			Month:   s.Month,
			Count:   s.Count,
			Total:   money(s.Total),
			Average: money(s.Average),
		})
	}
	return out
}

// swagger:model api.CategoryBreakdownResponse
type CategoryBreakdownResponse struct {
	CategoryID    int     `json:"category_id" example:"3"`
	CategoryName  string  `json:"category_name" example:"Food"`
	CategoryColor string  `json:"category_color" example:"#e74c3c"`
	Count         int     `json:"count" example:"4"`
	Total         float64 `json:"total" example:"80.25"`
	Average       float64 `json:"average" example:"20.06"`
	Minimum       float64 `json:"minimum" example:"5"`
	Maximum       float64 `json:"maximum" example:"40"`
}

func NewCategoryBreakdown(stats []model.CategoryBreakdown) []CategoryBreakdownResponse {
	out := make([]CategoryBreakdownResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, CategoryBreakdownResponse{
			CategoryID:    s.CategoryID,
			CategoryName:  s.CategoryName,
			CategoryColor: s.CategoryColor,
			Count:         s.Count,
			Total:         money(s.Total),
			Average:       money(s.Average),
			Minimum:       money(s.Min),
			Maximum:       money(s.Max),
		})
	}
	return out
}
