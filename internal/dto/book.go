package dto

import (
	"github.com/GregMSThompson/ledger-backend/internal/ledger"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

type CreateBookRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// BookSummary is one row of the book list: the book with totals over all of its
// entries.
type BookSummary struct {
	Book       *models.Book  `json:"book"`
	Summary    ledger.Totals `json:"summary"`
	EntryCount int           `json:"entryCount"`
}

// BookDetail is everything the book page shows: the book, totals over all of its
// entries, the entries left after filtering and the user's tag vocabulary.
type BookDetail struct {
	Book          *models.Book      `json:"book"`
	Summary       ledger.Totals     `json:"summary"`
	Entries       []models.Entry    `json:"entries"`
	TotalEntries  int               `json:"totalEntries"`
	Filters       ledger.FilterSpec `json:"filters"`
	FiltersActive bool              `json:"filtersActive"`
	Tags          []models.UserTag  `json:"tags"`
}
