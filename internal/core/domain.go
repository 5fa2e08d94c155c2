package core

import (
	"errors"
	"time"
)

// Validation errors returned by the ledger mutation operations.
var (
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptySource   = errors.New("empty income source")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// DefaultDescription is stored when an expense is created with a blank
// description.
const DefaultDescription = "Ingen beskrivning"

// Default category lists. The category sets are fixed for the lifetime
// of a ledger; there is no operation that adds or removes a category.
var (
	DefaultExpenseCategories = []string{"Mat", "Hyra", "Transport", "Nöje", "Hälsa", "Övrigt"}
	DefaultIncomeCategories  = []string{"Lön", "Bidrag", "Gåva", "Övrigt"}
)

type (
	// Expense is an immutable-after-creation transaction record. The
	// category is required at creation time but never re-validated
	// against the ledger's category list.
	Expense struct {
		ID          string    `json:"id"`
		Category    string    `json:"category"`
		Amount      Money     `json:"amount"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// Income is the earning counterpart of Expense.
	Income struct {
		ID        string    `json:"id"`
		Source    string    `json:"source"`
		Amount    Money     `json:"amount"`
		CreatedAt time.Time `json:"createdAt"`
	}
)
