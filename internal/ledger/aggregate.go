package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

// Totals is the income/expense summary of a set of entries.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Aggregate sums entry amounts by type. Balance is always Income - Expense and no
// rounding is applied.
func Aggregate(entries []models.Entry) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case models.EntryIncome:
			income = income.Add(e.Amount)
		case models.EntryExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
