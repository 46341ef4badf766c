package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/ledger"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

type bookBKStore interface {
	Create(ctx context.Context, book models.Book) (*models.Book, error)
	Get(ctx context.Context, bookID string) (*models.Book, error)
	ListByOwner(ctx context.Context, uid string) ([]*models.Book, error)
	Delete(ctx context.Context, bookID string) error
}

type entryBKStore interface {
	ListByBook(ctx context.Context, bookID string) ([]models.Entry, error)
	DeleteByBook(ctx context.Context, bookID string) (int, error)
}

type tagBKStore interface {
	List(ctx context.Context, uid string) ([]models.UserTag, error)
}

type attachmentBKStore interface {
	DeleteForEntry(ctx context.Context, uid, entryID string) error
}

type validator interface {
	Validate(s any) error
}

type bookService struct {
	books       bookBKStore
	entries     entryBKStore
	tags        tagBKStore
	attachments attachmentBKStore
	validate    validator
	loc         *time.Location
}

func NewBookService(books bookBKStore, entries entryBKStore, tags tagBKStore, attachments attachmentBKStore, v validator, loc *time.Location) *bookService {
	if loc == nil {
		loc = time.UTC
	}
	return &bookService{
		books:       books,
		entries:     entries,
		tags:        tags,
		attachments: attachments,
		validate:    v,
		loc:         loc,
	}
}

// summaryLoadLimit caps concurrent entry loads when summarizing the book list.
const summaryLoadLimit = 8

// ListBooks returns the user's books, newest first, each with totals over its entries.
func (s *bookService) ListBooks(ctx context.Context, uid string) ([]dto.BookSummary, error) {
	books, err := s.books.ListByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.BookSummary, len(books))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryLoadLimit)
	for i, book := range books {
		g.Go(func() error {
			entries, err := s.entries.ListByBook(gctx, book.ID)
			if err != nil {
				return err
			}
			summaries[i] = dto.BookSummary{
				Book:       book,
				Summary:    ledger.Aggregate(entries),
				EntryCount: len(entries),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *bookService) CreateBook(ctx context.Context, uid string, req dto.CreateBookRequest) (*models.Book, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	book, err := s.books.Create(ctx, models.Book{Name: req.Name, OwnerUID: uid})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("book created", "book_id", book.ID)
	return book, nil
}

// GetBookDetail loads a book with its entries and the owner's tags. The summary
// covers every entry; only the entry list is narrowed by spec.
func (s *bookService) GetBookDetail(ctx context.Context, uid, bookID string, spec ledger.FilterSpec) (*dto.BookDetail, error) {
	var (
		book    *models.Book
		entries []models.Entry
		tags    []models.UserTag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		book, err = ownedBook(gctx, s.books, uid, bookID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.ListByBook(gctx, bookID)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = s.tags.List(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if spec.Location == nil {
		spec.Location = s.loc
	}
	filtered := ledger.FilterEntries(entries, spec)

	logger.FromContext(ctx).Debug("book detail loaded",
		"book_id", bookID, "entries", len(entries), "filtered", len(filtered))

	return &dto.BookDetail{
		Book:          book,
		Summary:       ledger.Aggregate(entries),
		Entries:       filtered,
		TotalEntries:  len(entries),
		Filters:       spec,
		FiltersActive: spec.IsActive(),
		Tags:          tags,
	}, nil
}

// DeleteBook removes the book, its entries and their attachments.
func (s *bookService) DeleteBook(ctx context.Context, uid, bookID string) error {
	log := logger.FromContext(ctx)

	if _, err := ownedBook(ctx, s.books, uid, bookID); err != nil {
		return err
	}

	// TODO: Make the cascade resumable; a failure part way leaves orphaned entries.
	entries, err := s.entries.ListByBook(ctx, bookID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.AttachmentURL == "" {
			continue
		}
		if err := s.attachments.DeleteForEntry(ctx, uid, e.ID); err != nil {
			log.Error("failed to delete attachment", "entry_id", e.ID, "error", err)
			return err
		}
	}

	n, err := s.entries.DeleteByBook(ctx, bookID)
	if err != nil {
		return err
	}
	if err := s.books.Delete(ctx, bookID); err != nil {
		return err
	}

	log.Info("book deleted", "book_id", bookID, "entries_deleted", n)
	return nil
}
