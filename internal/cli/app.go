package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"budgetbok/internal/config"
	"budgetbok/internal/core"
	"budgetbok/internal/log"
	"budgetbok/internal/services"
)

// App is the interactive event loop. It owns the ledger handle and
// processes exactly one user action at a time: commands arrive on a
// single channel, reminder prompts on another, and no ledger operation
// ever runs concurrently with another.
type App struct {
	ledger    *core.Ledger
	snapshots *services.SnapshotService
	reminder  *services.SaveReminder
	validator *InputValidator
	logger    *log.Logger
	out       io.Writer

	recentLimit int
	exportDir   string

	// pending holds a confirmation awaiting a yes/no answer; while it
	// is set the next input line resolves it instead of being parsed
	// as a command.
	pending *pendingAction
}

type pendingAction struct {
	prompt string
	onYes  func(ctx context.Context)
	onNo   func(ctx context.Context)
}

func NewApp(
	ledger *core.Ledger,
	snapshots *services.SnapshotService,
	reminder *services.SaveReminder,
	cfg *config.Config,
	logger *log.Logger,
	out io.Writer,
) *App {
	return &App{
		ledger:      ledger,
		snapshots:   snapshots,
		reminder:    reminder,
		validator:   NewInputValidator(),
		logger:      logger.WithComponent(log.ComponentCLI),
		out:         out,
		recentLimit: cfg.RecentLimit,
		exportDir:   cfg.ExportDir,
	}
}

// errQuit signals a user-requested exit through the errgroup without
// being reported as a failure.
var errQuit = errors.New("quit")

// IsQuit reports whether err is the normal quit signal.
func IsQuit(err error) bool {
	return errors.Is(err, errQuit)
}

// Run drives the event loop until the context is cancelled, the input
// channel closes, or the user quits.
func (a *App) Run(ctx context.Context, lines <-chan string) error {
	fmt.Fprintln(a.out, "budgetbok — type 'help' for commands")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.reminder.Prompts():
			a.promptUnsaved()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if quit := a.handleLine(ctx, line); quit {
				return errQuit
			}
		}
	}
}

func (a *App) handleLine(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)

	if a.pending != nil {
		a.resolvePending(ctx, line)
		return false
	}
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprint(a.out, helpText)
	case "expense":
		a.addExpense(ctx, args)
	case "income":
		a.addIncome(ctx, args)
	case "budget":
		a.setBudget(ctx, args)
	case "rm-expense":
		a.confirmDelete(ctx, args, "expense", a.ledger.DeleteExpense)
	case "rm-income":
		a.confirmDelete(ctx, args, "income", a.ledger.DeleteIncome)
	case "summary":
		renderSummary(a.out, a.ledger.Summarize())
	case "recent":
		a.showRecent(args)
	case "incomes":
		renderIncomes(a.out, a.ledger.IncomesSortedByDate())
	case "categories":
		renderCategories(a.out, a.ledger)
	case "export":
		a.export(ctx)
	case "save":
		a.saveNow(ctx)
	case "reset":
		a.confirmReset(ctx)
	case "quit", "exit":
		if a.reminder.Dirty() {
			a.saveNow(ctx)
		}
		return true
	default:
		fmt.Fprintf(a.out, "unknown command %q — type 'help'\n", cmd)
	}
	return false
}

func (a *App) addExpense(ctx context.Context, args []string) {
	in, err := ParseExpenseArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, "usage: expense <category> <amount> [description]")
		return
	}
	if err := a.validator.Validate(in); err != nil {
		fmt.Fprintln(a.out, "invalid input: a category and a positive amount are required")
		return
	}

	e, err := a.ledger.AddExpense(in.Category, core.Money{Cents: in.AmountCents}, in.Description)
	if err != nil {
		fmt.Fprintf(a.out, "could not add expense: %v\n", err)
		return
	}
	a.logger.Info("Expense added",
		log.FieldExpenseID, e.ID,
		log.FieldCategory, e.Category,
		log.FieldAmountCents, e.Amount.Cents)
	fmt.Fprintf(a.out, "added expense %s  %s  %s\n", e.Category, e.Amount, e.Description)
	a.persistAfterMutation(ctx)
}

func (a *App) addIncome(ctx context.Context, args []string) {
	in, err := ParseIncomeArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, "usage: income <source> <amount>")
		return
	}
	if err := a.validator.Validate(in); err != nil {
		fmt.Fprintln(a.out, "invalid input: a source and a positive amount are required")
		return
	}

	rec, err := a.ledger.AddIncome(in.Source, core.Money{Cents: in.AmountCents})
	if err != nil {
		fmt.Fprintf(a.out, "could not add income: %v\n", err)
		return
	}
	a.logger.Info("Income added",
		log.FieldIncomeID, rec.ID,
		log.FieldSource, rec.Source,
		log.FieldAmountCents, rec.Amount.Cents)
	fmt.Fprintf(a.out, "added income %s  %s\n", rec.Source, rec.Amount)
	a.persistAfterMutation(ctx)
}

func (a *App) setBudget(ctx context.Context, args []string) {
	in, err := ParseBudgetArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, "usage: budget <category> <amount>")
		return
	}
	if err := a.validator.Validate(in); err != nil {
		fmt.Fprintln(a.out, "invalid input: a category is required")
		return
	}

	a.ledger.SetBudget(in.Category, core.Money{Cents: in.AmountCents})
	a.logger.Info("Budget set",
		log.FieldCategory, in.Category,
		log.FieldAmountCents, in.AmountCents)
	fmt.Fprintf(a.out, "budget for %s set to %s\n", in.Category, core.Money{Cents: in.AmountCents})
	a.persistAfterMutation(ctx)
}

func (a *App) confirmDelete(ctx context.Context, args []string, kind string, del func(string)) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "usage: rm-%s <id>\n", kind)
		return
	}
	id := args[0]
	a.pending = &pendingAction{
		prompt: fmt.Sprintf("delete %s %s? (y/n)", kind, id),
		onYes: func(ctx context.Context) {
			del(id)
			a.logger.Info("Record deleted", log.FieldOperation, log.OpDelete, "kind", kind, "id", id)
			fmt.Fprintf(a.out, "deleted %s %s\n", kind, id)
			a.persistAfterMutation(ctx)
		},
	}
	fmt.Fprintln(a.out, a.pending.prompt)
}

func (a *App) confirmReset(ctx context.Context) {
	a.pending = &pendingAction{
		prompt: "reset everything and erase the saved budget? (y/n)",
		onYes: func(ctx context.Context) {
			a.snapshots.Reset(ctx, a.ledger)
			a.reminder.MarkSaved()
			fmt.Fprintln(a.out, "budget reset to defaults")
		},
	}
	fmt.Fprintln(a.out, a.pending.prompt)
}

func (a *App) resolvePending(ctx context.Context, answer string) {
	p := a.pending
	a.pending = nil
	switch strings.ToLower(answer) {
	case "y", "yes", "j", "ja":
		p.onYes(ctx)
	default:
		if p.onNo != nil {
			p.onNo(ctx)
		}
		fmt.Fprintln(a.out, "cancelled")
	}
}

func (a *App) showRecent(args []string) {
	limit := a.recentLimit
	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			limit = n
		}
	}
	renderRecent(a.out, a.ledger.RecentExpenses(limit))
}

func (a *App) export(ctx context.Context) {
	path, err := a.snapshots.Export(ctx, a.ledger, a.exportDir)
	if err != nil {
		a.logger.Error("Export failed", log.FieldError, err)
		fmt.Fprintln(a.out, "export failed — see log for details")
		return
	}
	fmt.Fprintf(a.out, "exported to %s\n", path)
}

// persistAfterMutation is the caller-side half of the Saved/Dirty
// state machine: every mutation marks the ledger dirty and is followed
// by a save attempt.
func (a *App) persistAfterMutation(ctx context.Context) {
	a.reminder.MarkDirty()
	a.saveNow(ctx)
}

func (a *App) saveNow(ctx context.Context) {
	if a.snapshots.Save(ctx, a.ledger) {
		a.reminder.MarkSaved()
		return
	}
	// Availability over durability: the in-memory ledger is intact,
	// the user just has to retry the save.
	fmt.Fprintln(a.out, "warning: could not save your budget — please retry with 'save'")
}

func (a *App) promptUnsaved() {
	if a.pending != nil {
		// A confirmation is already on screen; stay dirty and ask again later.
		a.reminder.Snooze()
		return
	}
	a.pending = &pendingAction{
		prompt: "you have unsaved changes — save now? (y/n)",
		onYes:  a.saveNow,
		onNo: func(context.Context) {
			a.reminder.Snooze()
		},
	}
	fmt.Fprintln(a.out, a.pending.prompt)
}
