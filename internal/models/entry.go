package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// Entry is a single income or expense transaction inside a book.
// Amount is never negative at rest; the sign comes from Type.
type Entry struct {
	ID            string          `json:"id"`
	BookID        string          `json:"bookId"`
	OwnerUID      string          `json:"ownerUid"`
	Type          EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"` // when the transaction happened
	Description   string          `json:"description"`
	Tags          []string        `json:"tags"`
	AttachmentURL string          `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
