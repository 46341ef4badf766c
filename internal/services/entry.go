package services

import (
	"context"
	"io"
	"strings"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/ledger"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

type entryENStore interface {
	Create(ctx context.Context, e models.Entry) (*models.Entry, error)
	Get(ctx context.Context, entryID string) (*models.Entry, error)
	Update(ctx context.Context, entryID string, u dto.EntryUpdate) (*models.Entry, error)
	Delete(ctx context.Context, entryID string) error
}

type tagENStore interface {
	UpsertMany(ctx context.Context, uid string, names []string) error
}

type attachmentENStore interface {
	Upload(ctx context.Context, uid, entryID string, a dto.Attachment, r io.Reader) (dto.StoredAttachment, error)
	DeleteForEntry(ctx context.Context, uid, entryID string) error
	DeleteStale(ctx context.Context, uid, entryID, keep string) error
}

type fieldValidator interface {
	validator
	Var(name string, value any, tag string) error
}

type entryService struct {
	books       bookGetter
	entries     entryENStore
	tags        tagENStore
	attachments attachmentENStore
	validate    fieldValidator
}

func NewEntryService(books bookGetter, entries entryENStore, tags tagENStore, attachments attachmentENStore, v fieldValidator) *entryService {
	return &entryService{
		books:       books,
		entries:     entries,
		tags:        tags,
		attachments: attachments,
		validate:    v,
	}
}

func positiveAmountError() error {
	return errs.NewValidationErrorWithFields("validation failed",
		map[string]string{"amount": "must be greater than 0"})
}

func (s *entryService) CreateEntry(ctx context.Context, uid, bookID string, req dto.CreateEntryRequest) (*models.Entry, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, positiveAmountError()
	}
	if _, err := ownedBook(ctx, s.books, uid, bookID); err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, models.Entry{
		BookID:        bookID,
		OwnerUID:      uid,
		Type:          models.EntryType(req.Type),
		Amount:        req.Amount,
		Date:          req.Date,
		Description:   strings.TrimSpace(req.Description),
		Tags:          ledger.NormalizeTags(req.Tags),
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return nil, err
	}

	s.touchTags(ctx, uid, entry.Tags)
	logger.FromContext(ctx).Info("entry created", "book_id", bookID, "entry_id", entry.ID, "type", entry.Type)
	return entry, nil
}

// touchTags records tag usage. The entry is already saved, so a failure here is
// logged and not returned.
func (s *entryService) touchTags(ctx context.Context, uid string, tags []string) {
	if len(tags) == 0 {
		return
	}
	if err := s.tags.UpsertMany(ctx, uid, tags); err != nil {
		logger.FromContext(ctx).Warn("failed to record tag usage", "tags", tags, "error", err)
	}
}

func (s *entryService) GetEntry(ctx context.Context, uid, bookID, entryID string) (*models.Entry, error) {
	return ownedEntry(ctx, s.entries, uid, bookID, entryID)
}

func (s *entryService) UpdateEntry(ctx context.Context, uid, bookID, entryID string, req dto.UpdateEntryRequest) (*models.Entry, error) {
	update, err := s.checkUpdate(req)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEntry(ctx, s.entries, uid, bookID, entryID); err != nil {
		return nil, err
	}

	entry, err := s.entries.Update(ctx, entryID, update)
	if err != nil {
		return nil, err
	}

	if tags, ok := update.Tags.Get(); ok {
		s.touchTags(ctx, uid, tags)
	}
	logger.FromContext(ctx).Info("entry updated", "book_id", bookID, "entry_id", entryID)
	return entry, nil
}

// checkUpdate validates the fields present in req and returns them normalized.
func (s *entryService) checkUpdate(req dto.UpdateEntryRequest) (dto.EntryUpdate, error) {
	var u dto.EntryUpdate
	if req.Empty() {
		return u, errs.NewValidationError("no fields to update")
	}

	if v, ok := req.Type.Get(); ok {
		if err := s.validate.Var("type", v, "required,oneof=income expense"); err != nil {
			return u, err
		}
		u.Type = dto.SetTo(v)
	}
	if v, ok := req.Amount.Get(); ok {
		if !v.IsPositive() {
			return u, positiveAmountError()
		}
		u.Amount = dto.SetTo(v)
	}
	if v, ok := req.Date.Get(); ok {
		if v.IsZero() {
			return u, errs.NewValidationErrorWithFields("validation failed", map[string]string{"date": "is required"})
		}
		u.Date = dto.SetTo(v)
	}
	if v, ok := req.Description.Get(); ok {
		v = strings.TrimSpace(v)
		if err := s.validate.Var("description", v, "max=500"); err != nil {
			return u, err
		}
		u.Description = dto.SetTo(v)
	}
	if v, ok := req.Tags.Get(); ok {
		tags := ledger.NormalizeTags(v)
		if err := s.validate.Var("tags", tags, "max=20,dive,max=50"); err != nil {
			return u, err
		}
		u.Tags = dto.SetTo(tags)
	}
	if v, ok := req.AttachmentURL.Get(); ok {
		if err := s.validate.Var("attachmentUrl", v, "omitempty,url"); err != nil {
			return u, err
		}
		u.AttachmentURL = dto.SetTo(v)
	}
	return u, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, uid, bookID, entryID string) error {
	entry, err := ownedEntry(ctx, s.entries, uid, bookID, entryID)
	if err != nil {
		return err
	}
	if entry.AttachmentURL != "" {
		if err := s.attachments.DeleteForEntry(ctx, uid, entryID); err != nil {
			return err
		}
	}
	if err := s.entries.Delete(ctx, entryID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("entry deleted", "book_id", bookID, "entry_id", entryID)
	return nil
}

// UploadAttachment stores a receipt for the entry, replacing any earlier one. The
// previous objects are only removed once the entry points at the new one.
func (s *entryService) UploadAttachment(ctx context.Context, uid, bookID, entryID string, a dto.Attachment, r io.Reader) (*models.Entry, error) {
	if strings.TrimSpace(a.FileName) == "" {
		return nil, errs.NewValidationErrorWithFields("validation failed", map[string]string{"file": "is required"})
	}
	entry, err := ownedEntry(ctx, s.entries, uid, bookID, entryID)
	if err != nil {
		return nil, err
	}

	stored, err := s.attachments.Upload(ctx, uid, entryID, a, r)
	if err != nil {
		return nil, err
	}
	updated, err := s.entries.Update(ctx, entryID, dto.EntryUpdate{AttachmentURL: dto.SetTo(stored.URL)})
	if err != nil {
		return nil, err
	}

	if entry.AttachmentURL != "" {
		if err := s.attachments.DeleteStale(ctx, uid, entryID, stored.Object); err != nil {
			logger.FromContext(ctx).Warn("failed to remove replaced attachment", "entry_id", entryID, "error", err)
		}
	}
	return updated, nil
}
