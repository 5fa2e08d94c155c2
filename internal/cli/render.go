package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"budgetbok/internal/core"
)

const helpText = `commands:
  expense <category> <amount> [description]   record an expense
  income <source> <amount>                    record an income
  budget <category> <amount>                  set a category budget
  rm-expense <id>                             delete an expense (asks first)
  rm-income <id>                              delete an income (asks first)
  summary                                     budgets, spend and totals
  recent [n]                                  latest expenses
  incomes                                     incomes, newest first
  categories                                  valid categories and sources
  export                                      write a JSON snapshot file
  save                                        save now
  reset                                       start over (asks first)
  quit                                        exit
`

func renderSummary(w io.Writer, s core.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tBUDGET\tSPENT\tREMAINING")
	for _, line := range s.Lines {
		marker := ""
		if line.Remaining.IsNegative() {
			marker = " !"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n",
			line.Category, line.Budget, line.Spent, line.Remaining, marker)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nincome  %s\nspent   %s\n", s.TotalIncome, s.TotalExpenses)
	if s.NetRemaining.IsNegative() {
		fmt.Fprintf(w, "net     %s (over budget)\n", s.NetRemaining)
	} else {
		fmt.Fprintf(w, "net     %s\n", s.NetRemaining)
	}
}

func renderRecent(w io.Writer, expenses []core.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "no expenses yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION\tID")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Category, e.Amount, e.Description, e.ID)
	}
	tw.Flush()
}

func renderIncomes(w io.Writer, incomes []core.Income) {
	if len(incomes) == 0 {
		fmt.Fprintln(w, "no incomes yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSOURCE\tAMOUNT\tID")
	for _, in := range incomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			in.CreatedAt.Format("2006-01-02 15:04"), in.Source, in.Amount, in.ID)
	}
	tw.Flush()
}

func renderCategories(w io.Writer, l *core.Ledger) {
	fmt.Fprintf(w, "expense categories: %s\n", strings.Join(l.ExpenseCategories, ", "))
	fmt.Fprintf(w, "income sources:     %s\n", strings.Join(l.IncomeCategories, ", "))
}
