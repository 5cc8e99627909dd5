package api

import "github.com/shopspring/decimal"

// money 只在輸出 JSON 時轉成 float64
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
