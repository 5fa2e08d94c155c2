package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger is the root aggregate: category lists, per-category budgets
// and the two transaction collections. It is an explicitly owned
// handle, not a package-level singleton, so callers (and tests) can
// construct isolated instances. Exactly one goroutine mutates a ledger
// at a time; the type carries no locking of its own.
//
// Persistence is the caller's responsibility: mutations only change
// the in-memory state.
type Ledger struct {
	ExpenseCategories []string         `json:"expenseCategories"`
	IncomeCategories  []string         `json:"incomeCategories"`
	Budgets           map[string]Money `json:"budgets"`
	Expenses          []Expense        `json:"expenses"`
	Incomes           []Income         `json:"incomes"`
}

// NewLedger returns a ledger with the default category lists and no
// budgets or transactions.
func NewLedger() *Ledger {
	l := &Ledger{}
	l.Reset()
	return l
}

// Reset replaces the entire ledger with the default snapshot. Erasing
// the persisted copy is up to the caller.
func (l *Ledger) Reset() {
	l.ExpenseCategories = append([]string(nil), DefaultExpenseCategories...)
	l.IncomeCategories = append([]string(nil), DefaultIncomeCategories...)
	l.Budgets = make(map[string]Money)
	l.Expenses = nil
	l.Incomes = nil
}

// AddExpense appends a new expense with a fresh id and the current
// timestamp. The category must be non-blank and the amount positive;
// membership in ExpenseCategories is deliberately not checked, and
// duplicates are allowed. A blank description gets a placeholder.
func (l *Ledger) AddExpense(category string, amount Money, description string) (Expense, error) {
	if strings.TrimSpace(category) == "" {
		return Expense{}, ErrEmptyCategory
	}
	if amount.Cents <= 0 {
		return Expense{}, ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	e := Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	l.Expenses = append(l.Expenses, e)
	return e, nil
}

// AddIncome appends a new income record. Same contract as AddExpense,
// substituting the source for the category.
func (l *Ledger) AddIncome(source string, amount Money) (Income, error) {
	if strings.TrimSpace(source) == "" {
		return Income{}, ErrEmptySource
	}
	if amount.Cents <= 0 {
		return Income{}, ErrInvalidAmount
	}
	in := Income{
		ID:        uuid.NewString(),
		Source:    source,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	l.Incomes = append(l.Incomes, in)
	return in, nil
}

// DeleteExpense removes the expense with the given id. Deleting an
// unknown id is a no-op; ids are never reused.
func (l *Ledger) DeleteExpense(id string) {
	for i, e := range l.Expenses {
		if e.ID == id {
			l.Expenses = append(l.Expenses[:i], l.Expenses[i+1:]...)
			return
		}
	}
}

// DeleteIncome removes the income with the given id, if present.
func (l *Ledger) DeleteIncome(id string) {
	for i, in := range l.Incomes {
		if in.ID == id {
			l.Incomes = append(l.Incomes[:i], l.Incomes[i+1:]...)
			return
		}
	}
}

// SetBudget overwrites (or creates) the budget entry for category.
// The category is not checked against ExpenseCategories and negative
// values are not rejected here; the input layer enforces its own
// non-negative floor.
func (l *Ledger) SetBudget(category string, amount Money) {
	l.Budgets[category] = amount
}

// Budget returns the budget for category, zero when absent.
func (l *Ledger) Budget(category string) Money {
	return l.Budgets[category]
}
