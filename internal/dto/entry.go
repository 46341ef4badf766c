package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date" validate:"required"`
	Description   string          `json:"description" validate:"max=500"`
	Tags          []string        `json:"tags" validate:"max=20,dive,max=50"`
	AttachmentURL string          `json:"attachmentUrl" validate:"omitempty,url"`
}

// UpdateEntryRequest only changes the fields present in the body.
type UpdateEntryRequest struct {
	Type          Field[string]          `json:"type"`
	Amount        Field[decimal.Decimal] `json:"amount"`
	Date          Field[time.Time]       `json:"date"`
	Description   Field[string]          `json:"description"`
	Tags          Field[[]string]        `json:"tags"`
	AttachmentURL Field[string]          `json:"attachmentUrl"`
}

func (r UpdateEntryRequest) Empty() bool {
	return !r.Type.IsSet() && !r.Amount.IsSet() && !r.Date.IsSet() &&
		!r.Description.IsSet() && !r.Tags.IsSet() && !r.AttachmentURL.IsSet()
}

// EntryUpdate is a validated partial update handed to the entry store.
type EntryUpdate struct {
	Type          Field[string]
	Amount        Field[decimal.Decimal]
	Date          Field[time.Time]
	Description   Field[string]
	Tags          Field[[]string]
	AttachmentURL Field[string] // SetTo("") removes the attachment reference
}

type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
}

// StoredAttachment is an uploaded object and the URL clients fetch it from.
type StoredAttachment struct {
	Object string
	URL    string
}
