package cli

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"budgetbok/internal/core"
)

// Input parsing for the interactive commands. Amount coercion is
// permissive on purpose (see core.ParseAmount); the structs carry
// validation tags so presentation-level checks stay declarative.

var ErrUsage = errors.New("usage")

type ExpenseInput struct {
	Category    string `validate:"required"`
	AmountCents int64  `validate:"gt=0"`
	Description string
}

type IncomeInput struct {
	Source      string `validate:"required"`
	AmountCents int64  `validate:"gt=0"`
}

type BudgetInput struct {
	Category    string `validate:"required"`
	AmountCents int64  `validate:"gte=0"`
}

// InputValidator validates parsed command input against struct tags.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	return &InputValidator{validate: validator.New()}
}

func (v *InputValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ParseExpenseArgs parses `<category> <amount> [description...]`.
func ParseExpenseArgs(args []string) (ExpenseInput, error) {
	if len(args) < 2 {
		return ExpenseInput{}, ErrUsage
	}
	return ExpenseInput{
		Category:    args[0],
		AmountCents: core.ParseAmount(args[1]).Cents,
		Description: strings.Join(args[2:], " "),
	}, nil
}

// ParseIncomeArgs parses `<source> <amount>`.
func ParseIncomeArgs(args []string) (IncomeInput, error) {
	if len(args) != 2 {
		return IncomeInput{}, ErrUsage
	}
	return IncomeInput{
		Source:      args[0],
		AmountCents: core.ParseAmount(args[1]).Cents,
	}, nil
}

// ParseBudgetArgs parses `<category> <amount>`. Negative amounts are
// floored to zero here, mirroring the non-negative floor the budget
// input widget enforces; the data layer itself stays permissive.
func ParseBudgetArgs(args []string) (BudgetInput, error) {
	if len(args) != 2 {
		return BudgetInput{}, ErrUsage
	}
	cents := core.ParseAmount(args[1]).Cents
	if cents < 0 {
		cents = 0
	}
	return BudgetInput{
		Category:    args[0],
		AmountCents: cents,
	}, nil
}
