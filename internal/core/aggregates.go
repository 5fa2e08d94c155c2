package core

import "sort"

// Derived computations over the ledger. All of these are pure reads:
// they never mutate the ledger and are safe to call at any point
// between mutations. Sums are exact because amounts are stored in
// cents, pre-rounded.

// SpentByCategory sums the amounts of all expenses recorded under the
// given category.
func (l *Ledger) SpentByCategory(category string) Money {
	var total Money
	for _, e := range l.Expenses {
		if e.Category == category {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// RemainingByCategory is the budget for the category (zero when no
// budget is set) minus what was spent in it. May be negative.
func (l *Ledger) RemainingByCategory(category string) Money {
	return l.Budgets[category].Sub(l.SpentByCategory(category))
}

// TotalIncome sums all income amounts.
func (l *Ledger) TotalIncome() Money {
	var total Money
	for _, in := range l.Incomes {
		total = total.Add(in.Amount)
	}
	return total
}

// TotalExpenses sums all expense amounts.
func (l *Ledger) TotalExpenses() Money {
	var total Money
	for _, e := range l.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// NetRemaining is total income minus total expenses. May be negative.
func (l *Ledger) NetRemaining() Money {
	return l.TotalIncome().Sub(l.TotalExpenses())
}

// RecentExpenses returns the expenses sorted most recent first,
// truncated to limit entries. The sort is stable, so expenses sharing
// a timestamp keep their insertion order. A negative limit (or one
// beyond the collection size) returns everything.
func (l *Ledger) RecentExpenses(limit int) []Expense {
	out := append([]Expense(nil), l.Expenses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit < 0 || limit > len(out) {
		limit = len(out)
	}
	return out[:limit]
}

// IncomesSortedByDate returns all incomes sorted most recent first.
func (l *Ledger) IncomesSortedByDate() []Income {
	out := append([]Income(nil), l.Incomes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
