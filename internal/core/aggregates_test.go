package core

import (
	"testing"
	"time"
)

func expenseAt(category string, cents int64, at time.Time) Expense {
	return Expense{
		ID:          "e-" + at.Format(time.RFC3339Nano),
		Category:    category,
		Amount:      Money{Cents: cents},
		Description: DefaultDescription,
		CreatedAt:   at,
	}
}

func TestLedger_SpentByCategory(t *testing.T) {
	l := NewLedger()
	l.Expenses = []Expense{
		expenseAt("Mat", 12056, time.Now()), // 120.555 rounded at entry
		expenseAt("Hyra", 50000, time.Now()),
	}

	if got := l.SpentByCategory("Mat").String(); got != "120.56" {
		t.Errorf("SpentByCategory(Mat) = %s, want 120.56", got)
	}
	if got := l.SpentByCategory("Hyra").String(); got != "500.00" {
		t.Errorf("SpentByCategory(Hyra) = %s, want 500.00", got)
	}
	if got := l.SpentByCategory("Nöje").Cents; got != 0 {
		t.Errorf("SpentByCategory(Nöje) = %d cents, want 0", got)
	}
}

func TestLedger_RemainingByCategory(t *testing.T) {
	l := NewLedger()
	l.SetBudget("Mat", Money{Cents: 10000})
	l.Expenses = []Expense{expenseAt("Mat", 12056, time.Now())}

	if got := l.RemainingByCategory("Mat").String(); got != "-20.56" {
		t.Errorf("RemainingByCategory(Mat) = %s, want -20.56", got)
	}
	// No budget set means remaining is just the negated spend.
	l.Expenses = append(l.Expenses, expenseAt("Hyra", 500, time.Now()))
	if got := l.RemainingByCategory("Hyra").Cents; got != -500 {
		t.Errorf("RemainingByCategory(Hyra) = %d cents, want -500", got)
	}
}

func TestLedger_NetRemaining(t *testing.T) {
	l := NewLedger()
	l.Incomes = []Income{{ID: "i1", Source: "Lön", Amount: Money{Cents: 300000}, CreatedAt: time.Now()}}
	l.Expenses = []Expense{expenseAt("Hyra", 320000, time.Now())}

	net := l.NetRemaining()
	if net.Cents != -20000 {
		t.Fatalf("NetRemaining = %d cents, want -20000", net.Cents)
	}
	if !net.IsNegative() {
		t.Error("NetRemaining should report negative")
	}
	if net.String() != "-200.00" {
		t.Errorf("NetRemaining.String() = %q, want -200.00", net.String())
	}
}

func TestLedger_RecentExpenses(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	l := NewLedger()
	l.Expenses = []Expense{
		expenseAt("Mat", 100, t1),
		expenseAt("Hyra", 200, t2),
	}

	got := l.RecentExpenses(1)
	if len(got) != 1 {
		t.Fatalf("RecentExpenses(1) returned %d entries, want 1", len(got))
	}
	if !got[0].CreatedAt.Equal(t2) {
		t.Errorf("RecentExpenses(1) returned entry at %v, want %v", got[0].CreatedAt, t2)
	}

	if got := l.RecentExpenses(10); len(got) != 2 {
		t.Errorf("RecentExpenses(10) returned %d entries, want all 2", len(got))
	}
	if got := l.RecentExpenses(-1); len(got) != 2 {
		t.Errorf("RecentExpenses(-1) returned %d entries, want all 2", len(got))
	}
	if got := l.RecentExpenses(0); len(got) != 0 {
		t.Errorf("RecentExpenses(0) returned %d entries, want 0", len(got))
	}
}

func TestLedger_RecentExpenses_StableOnTies(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewLedger()
	l.Expenses = []Expense{
		{ID: "first", Category: "Mat", Amount: Money{Cents: 100}, CreatedAt: at},
		{ID: "second", Category: "Mat", Amount: Money{Cents: 200}, CreatedAt: at},
	}

	got := l.RecentExpenses(2)
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("tied timestamps reordered: %s, %s", got[0].ID, got[1].ID)
	}

	// Sorting must not touch the underlying collection order.
	if l.Expenses[0].ID != "first" {
		t.Error("RecentExpenses mutated the ledger's insertion order")
	}
}

func TestLedger_IncomesSortedByDate(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	l := NewLedger()
	l.Incomes = []Income{
		{ID: "old", Source: "Lön", Amount: Money{Cents: 100}, CreatedAt: t1},
		{ID: "new", Source: "Gåva", Amount: Money{Cents: 200}, CreatedAt: t2},
	}

	got := l.IncomesSortedByDate()
	if len(got) != 2 {
		t.Fatalf("IncomesSortedByDate returned %d entries, want 2", len(got))
	}
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("order = %s, %s; want new, old", got[0].ID, got[1].ID)
	}
}

func TestLedger_Summarize(t *testing.T) {
	l := NewLedger()
	l.SetBudget("Mat", Money{Cents: 150000})
	l.Expenses = []Expense{expenseAt("Mat", 12056, time.Now())}
	l.Incomes = []Income{{ID: "i1", Source: "Lön", Amount: Money{Cents: 300000}, CreatedAt: time.Now()}}

	s := l.Summarize()
	if len(s.Lines) != len(l.ExpenseCategories) {
		t.Fatalf("Summarize lines = %d, want %d", len(s.Lines), len(l.ExpenseCategories))
	}
	if s.Lines[0].Category != "Mat" {
		t.Errorf("first line category = %q, want Mat (display order)", s.Lines[0].Category)
	}
	if s.Lines[0].Remaining.String() != "1379.44" {
		t.Errorf("Mat remaining = %s, want 1379.44", s.Lines[0].Remaining)
	}
	if s.NetRemaining.String() != "2879.44" {
		t.Errorf("net = %s, want 2879.44", s.NetRemaining)
	}
}
