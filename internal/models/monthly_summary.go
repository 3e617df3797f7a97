package models

// MonthlySummary contains aggregated income and expense totals for one
// calendar month. Balance is always income minus expenses.
type MonthlySummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
	Period   string  `json:"period"`
}
