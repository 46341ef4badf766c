package services

import (
	"context"

	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

type bookGetter interface {
	Get(ctx context.Context, bookID string) (*models.Book, error)
}

type entryGetter interface {
	Get(ctx context.Context, entryID string) (*models.Entry, error)
}

// Resources owned by someone else are reported as missing so IDs can't be enumerated.

func ownedBook(ctx context.Context, books bookGetter, uid, bookID string) (*models.Book, error) {
	book, err := books.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.OwnerUID != uid {
		return nil, errs.NewNotFoundError("book not found")
	}
	return book, nil
}

func ownedEntry(ctx context.Context, entries entryGetter, uid, bookID, entryID string) (*models.Entry, error) {
	entry, err := entries.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OwnerUID != uid || entry.BookID != bookID {
		return nil, errs.NewNotFoundError("entry not found")
	}
	return entry, nil
}
