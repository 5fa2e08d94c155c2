package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"budgetbok/internal/core"
	"budgetbok/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *SnapshotService {
	t.Helper()
	store, err := storage.NewSnapshotStore(filepath.Join(t.TempDir(), "budgetbok.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewSnapshotService(store, "budgetbok.ledger")
}

func TestSnapshotService_SaveLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l := core.NewLedger()
	_, err := l.AddExpense("Mat", core.ParseAmount("120.555"), "veckohandling")
	require.NoError(t, err)
	_, err = l.AddIncome("Lön", core.ParseAmount("3000"))
	require.NoError(t, err)
	l.SetBudget("Mat", core.ParseAmount("1500"))

	require.True(t, svc.Save(ctx, l), "Save should verify and succeed")

	got := svc.Load(ctx)
	require.True(t, got.Found)
	assert.Equal(t, l.ExpenseCategories, got.Ledger.ExpenseCategories)
	assert.Equal(t, l.IncomeCategories, got.Ledger.IncomeCategories)
	assert.Equal(t, l.Budgets, got.Ledger.Budgets)
	require.Len(t, got.Ledger.Expenses, 1)
	assert.Equal(t, l.Expenses[0].ID, got.Ledger.Expenses[0].ID)
	assert.Equal(t, int64(12056), got.Ledger.Expenses[0].Amount.Cents)
	assert.True(t, l.Expenses[0].CreatedAt.Equal(got.Ledger.Expenses[0].CreatedAt))
	require.Len(t, got.Ledger.Incomes, 1)
	assert.Equal(t, l.Incomes[0].ID, got.Ledger.Incomes[0].ID)
}

func TestSnapshotService_LoadEmptySlot(t *testing.T) {
	svc := newTestService(t)

	got := svc.Load(context.Background())
	assert.False(t, got.Found)
	assert.Equal(t, core.DefaultExpenseCategories, got.Ledger.ExpenseCategories)
	assert.Empty(t, got.Ledger.Expenses)
	assert.Empty(t, got.Ledger.Incomes)
	assert.Empty(t, got.Ledger.Budgets)
}

func TestSnapshotService_LoadPartialBlob(t *testing.T) {
	store, err := storage.NewSnapshotStore(filepath.Join(t.TempDir(), "budgetbok.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	svc := NewSnapshotService(store, "budgetbok.ledger")
	ctx := context.Background()

	// A blob holding only expenses: every other field must fall back
	// to its default independently.
	partial := fmt.Sprintf(`{"expenses":[{"id":"e1","category":"Mat","amount":12.50,"description":"x","createdAt":%q}]}`,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Format(time.RFC3339))
	require.NoError(t, store.Put(ctx, "budgetbok.ledger", []byte(partial)))

	got := svc.Load(ctx)
	require.True(t, got.Found)
	require.Len(t, got.Ledger.Expenses, 1)
	assert.Equal(t, "e1", got.Ledger.Expenses[0].ID)
	assert.Equal(t, int64(1250), got.Ledger.Expenses[0].Amount.Cents)
	assert.Equal(t, core.DefaultExpenseCategories, got.Ledger.ExpenseCategories)
	assert.Equal(t, core.DefaultIncomeCategories, got.Ledger.IncomeCategories)
	assert.Empty(t, got.Ledger.Budgets)
	assert.Empty(t, got.Ledger.Incomes)
}

func TestSnapshotService_LoadMalformedBlob(t *testing.T) {
	store, err := storage.NewSnapshotStore(filepath.Join(t.TempDir(), "budgetbok.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	svc := NewSnapshotService(store, "budgetbok.ledger")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "budgetbok.ledger", []byte("{not json")))

	got := svc.Load(ctx)
	assert.False(t, got.Found, "malformed blob degrades to defaults, never crashes")
	assert.Equal(t, core.DefaultExpenseCategories, got.Ledger.ExpenseCategories)
}

func TestSnapshotService_ResetThenLoad(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l := core.NewLedger()
	_, err := l.AddExpense("Mat", core.ParseAmount("10"), "")
	require.NoError(t, err)
	require.True(t, svc.Save(ctx, l))

	svc.Reset(ctx, l)
	assert.Empty(t, l.Expenses, "Reset must revert the in-memory ledger")

	got := svc.Load(ctx)
	assert.False(t, got.Found, "Reset must remove the persisted blob entirely")
	assert.Empty(t, got.Ledger.Expenses)
}

func TestSnapshotService_Export(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l := core.NewLedger()
	_, err := l.AddIncome("Lön", core.ParseAmount("3000"))
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := svc.Export(ctx, l, dir)
	require.NoError(t, err)

	wantName := fmt.Sprintf("budget-%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, wantName, filepath.Base(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &doc))
	for _, field := range []string{"expenseCategories", "incomeCategories", "budgets", "expenses", "incomes"} {
		assert.Contains(t, doc, field)
	}
}
