// Package services orchestrates the ledger's persistence lifecycle:
// snapshot save/load/reset, the JSON export and the save reminder.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budgetbok/internal/core"
	"budgetbok/internal/storage"
)

// snapshot is the persisted document: exactly the five top-level
// fields, no schema version. Format drift is absorbed by field-by-field
// defaulting in decode, never by a migration step.
type snapshot struct {
	ExpenseCategories []string              `json:"expenseCategories"`
	IncomeCategories  []string              `json:"incomeCategories"`
	Budgets           map[string]core.Money `json:"budgets"`
	Expenses          []core.Expense        `json:"expenses"`
	Incomes           []core.Income         `json:"incomes"`
}

// LoadResult reports whether a persisted snapshot was found; Ledger is
// always structurally complete, falling back to defaults.
type LoadResult struct {
	Found  bool
	Ledger *core.Ledger
}

// SnapshotService persists the ledger to a single slot of the snapshot
// store. Every failure path degrades instead of propagating: the
// in-memory ledger stays at its last-known-good state and the user can
// keep working.
type SnapshotService struct {
	store *storage.SnapshotStore
	key   string
}

func NewSnapshotService(store *storage.SnapshotStore, key string) *SnapshotService {
	return &SnapshotService{store: store, key: key}
}

// Save serializes the ledger, writes it to the slot, then reads the
// slot back and requires byte-for-byte equality before reporting
// success. Any failure (serialization, write, read-back, mismatch)
// returns false with a logged diagnostic; Save never returns an error
// to its caller.
func (s *SnapshotService) Save(ctx context.Context, l *core.Ledger) bool {
	body, err := json.Marshal(snapshotFromLedger(l))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize ledger snapshot", "key", s.key, "error", err)
		return false
	}

	if err := s.store.Put(ctx, s.key, body); err != nil {
		slog.ErrorContext(ctx, "Failed to write ledger snapshot", "key", s.key, "error", err)
		return false
	}

	stored, err := s.store.Get(ctx, s.key)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read back ledger snapshot", "key", s.key, "error", err)
		return false
	}
	if !bytes.Equal(body, stored) {
		slog.ErrorContext(ctx, "Snapshot verification mismatch",
			"key", s.key, "written_bytes", len(body), "stored_bytes", len(stored))
		return false
	}

	slog.InfoContext(ctx, "Ledger snapshot saved",
		"key", s.key,
		"bytes", len(body),
		"expenses", len(l.Expenses),
		"incomes", len(l.Incomes))
	return true
}

// Load reads the slot. An empty slot or an unparseable blob degrades
// to {Found: false, default ledger} with a logged diagnostic. A
// parseable blob is merged field-by-field against the defaults, so a
// partial document still yields a structurally complete ledger.
func (s *SnapshotService) Load(ctx context.Context) LoadResult {
	l := core.NewLedger()

	body, err := s.store.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return LoadResult{Found: false, Ledger: l}
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read ledger snapshot", "key", s.key, "error", err)
		return LoadResult{Found: false, Ledger: l}
	}

	var snap snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		slog.WarnContext(ctx, "Malformed ledger snapshot, falling back to defaults",
			"key", s.key, "error", err)
		return LoadResult{Found: false, Ledger: l}
	}

	// Each field independently falls back to its default when absent.
	if snap.ExpenseCategories != nil {
		l.ExpenseCategories = snap.ExpenseCategories
	}
	if snap.IncomeCategories != nil {
		l.IncomeCategories = snap.IncomeCategories
	}
	if snap.Budgets != nil {
		l.Budgets = snap.Budgets
	}
	if snap.Expenses != nil {
		l.Expenses = snap.Expenses
	}
	if snap.Incomes != nil {
		l.Incomes = snap.Incomes
	}

	slog.InfoContext(ctx, "Ledger snapshot loaded",
		"key", s.key,
		"expenses", len(l.Expenses),
		"incomes", len(l.Incomes))
	return LoadResult{Found: true, Ledger: l}
}

// Reset removes the persisted snapshot entirely (not merely overwrites
// it with defaults) and reverts the in-memory ledger to the default
// snapshot. Storage failures are logged; the in-memory reset happens
// regardless.
func (s *SnapshotService) Reset(ctx context.Context, l *core.Ledger) {
	if err := s.store.Delete(ctx, s.key); err != nil {
		slog.ErrorContext(ctx, "Failed to remove ledger snapshot", "key", s.key, "error", err)
	}
	l.Reset()
	slog.InfoContext(ctx, "Ledger reset to defaults", "key", s.key)
}

// Export writes a pretty-printed one-way snapshot of the ledger to
// dir, named after the current calendar date, and returns the path.
// There is no corresponding import.
func (s *SnapshotService) Export(ctx context.Context, l *core.Ledger, dir string) (string, error) {
	body, err := json.MarshalIndent(snapshotFromLedger(l), "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize export: %w", err)
	}

	name := fmt.Sprintf("budget-%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	slog.InfoContext(ctx, "Ledger exported", "path", path, "bytes", len(body))
	return path, nil
}

func snapshotFromLedger(l *core.Ledger) snapshot {
	snap := snapshot{
		ExpenseCategories: l.ExpenseCategories,
		IncomeCategories:  l.IncomeCategories,
		Budgets:           l.Budgets,
		Expenses:          l.Expenses,
		Incomes:           l.Incomes,
	}
	// Encode empty collections as [] / {} rather than null so a saved
	// blob round-trips field-for-field.
	if snap.ExpenseCategories == nil {
		snap.ExpenseCategories = []string{}
	}
	if snap.IncomeCategories == nil {
		snap.IncomeCategories = []string{}
	}
	if snap.Budgets == nil {
		snap.Budgets = map[string]core.Money{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []core.Expense{}
	}
	if snap.Incomes == nil {
		snap.Incomes = []core.Income{}
	}
	return snap
}
