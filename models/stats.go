package models

import "github.com/shopspring/decimal"

// ProjectStats 项目汇总统计（实时计算，不落库）
type ProjectStats struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetBalance    float64 `json:"netBalance"`
	IncomeCount   int     `json:"incomeCount"`
	ExpenseCount  int     `json:"expenseCount"`
}

// ComputeStats 按金额列表汇总，使用 decimal 求和避免浮点累加误差
func ComputeStats(incomeAmounts, expenseAmounts []float64) ProjectStats {
	totalIncome := sumAmounts(incomeAmounts)
	totalExpenses := sumAmounts(expenseAmounts)

	return ProjectStats{
		TotalIncome:   totalIncome.InexactFloat64(),
		TotalExpenses: totalExpenses.InexactFloat64(),
		NetBalance:    totalIncome.Sub(totalExpenses).InexactFloat64(),
		IncomeCount:   len(incomeAmounts),
		ExpenseCount:  len(expenseAmounts),
	}
}

func sumAmounts(amounts []float64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total
}
