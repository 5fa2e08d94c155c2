package core

// BudgetLine is one row of the per-category budget summary consumed by
// the view layer.
type BudgetLine struct {
	Category  string
	Budget    Money
	Spent     Money
	Remaining Money
}

// Summary is the full dashboard read model: one line per expense
// category, in display order, plus the overall totals.
type Summary struct {
	Lines         []BudgetLine
	TotalIncome   Money
	TotalExpenses Money
	NetRemaining  Money
}

// Summarize builds the dashboard summary from the ledger's category
// list. Categories without a budget show a zero budget.
func (l *Ledger) Summarize() Summary {
	s := Summary{
		TotalIncome:   l.TotalIncome(),
		TotalExpenses: l.TotalExpenses(),
		NetRemaining:  l.NetRemaining(),
	}
	for _, cat := range l.ExpenseCategories {
		s.Lines = append(s.Lines, BudgetLine{
			Category:  cat,
			Budget:    l.Budgets[cat],
			Spent:     l.SpentByCategory(cat),
			Remaining: l.RemainingByCategory(cat),
		})
	}
	return s
}
