package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

// entryDocument is the stored shape of an entry. Amounts are kept as numbers so
// documents written by the web client stay readable.
type entryDocument struct {
	BookID        string    `firestore:"bookId"`
	OwnerUID      string    `firestore:"ownerUid"`
	Type          string    `firestore:"type"`
	Amount        float64   `firestore:"amount"`
	Date          time.Time `firestore:"date"`
	Description   string    `firestore:"description"`
	Tags          []string  `firestore:"tags"`
	AttachmentURL string    `firestore:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time `firestore:"updatedAt,serverTimestamp"`
}

func toEntryDocument(e models.Entry) entryDocument {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryDocument{
		BookID:        e.BookID,
		OwnerUID:      e.OwnerUID,
		Type:          string(e.Type),
		Amount:        e.Amount.InexactFloat64(),
		Date:          e.Date,
		Description:   e.Description,
		Tags:          tags,
		AttachmentURL: e.AttachmentURL,
	}
}

func (d entryDocument) toModel(id string) models.Entry {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Entry{
		ID:            id,
		BookID:        d.BookID,
		OwnerUID:      d.OwnerUID,
		Type:          models.EntryType(d.Type),
		Amount:        decimal.NewFromFloat(d.Amount),
		Date:          d.Date,
		Description:   d.Description,
		Tags:          tags,
		AttachmentURL: d.AttachmentURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// entryUpdates turns a partial update into Firestore field updates. updatedAt is
// always refreshed; an empty attachment URL removes the field.
func entryUpdates(u dto.EntryUpdate) []firestore.Update {
	updates := []firestore.Update{{Path: "updatedAt", Value: firestore.ServerTimestamp}}

	if v, ok := u.Type.Get(); ok {
		updates = append(updates, firestore.Update{Path: "type", Value: v})
	}
	if v, ok := u.Amount.Get(); ok {
		updates = append(updates, firestore.Update{Path: "amount", Value: v.InexactFloat64()})
	}
	if v, ok := u.Date.Get(); ok {
		updates = append(updates, firestore.Update{Path: "date", Value: v})
	}
	if v, ok := u.Description.Get(); ok {
		updates = append(updates, firestore.Update{Path: "description", Value: v})
	}
	if v, ok := u.Tags.Get(); ok {
		if v == nil {
			v = []string{}
		}
		updates = append(updates, firestore.Update{Path: "tags", Value: v})
	}
	if v, ok := u.AttachmentURL.Get(); ok {
		if v == "" {
			updates = append(updates, firestore.Update{Path: "attachmentUrl", Value: firestore.Delete})
		} else {
			updates = append(updates, firestore.Update{Path: "attachmentUrl", Value: v})
		}
	}
	return updates
}

type entryStore struct {
	client *firestore.Client
}

func NewEntryStore(client *firestore.Client) *entryStore {
	return &entryStore{client: client}
}

func (s *entryStore) collection() *firestore.CollectionRef {
	return s.client.Collection("entries")
}

// Create stores a new entry and returns it as persisted, timestamps included.
func (s *entryStore) Create(ctx context.Context, e models.Entry) (*models.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, err := s.collection().Doc(e.ID).Create(ctx, toEntryDocument(e)); err != nil {
		return nil, errs.FromFirestore("create", "failed to create entry", "entry not found", err)
	}
	return s.Get(ctx, e.ID)
}

func (s *entryStore) Get(ctx context.Context, entryID string) (*models.Entry, error) {
	doc, err := s.collection().Doc(entryID).Get(ctx)
	if err != nil {
		return nil, errs.FromFirestore("read", "failed to get entry", "entry not found", err)
	}
	return entryFromSnapshot(doc)
}

// ListByBook returns the book's entries sorted by date, newest first.
func (s *entryStore) ListByBook(ctx context.Context, bookID string) ([]models.Entry, error) {
	iter := s.collection().
		Where("bookId", "==", bookID).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []models.Entry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.FromFirestore("read", "failed to list entries", "entries not found", err)
		}
		e, err := entryFromSnapshot(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *entryStore) Update(ctx context.Context, entryID string, u dto.EntryUpdate) (*models.Entry, error) {
	if _, err := s.collection().Doc(entryID).Update(ctx, entryUpdates(u)); err != nil {
		return nil, errs.FromFirestore("update", "failed to update entry", "entry not found", err)
	}
	return s.Get(ctx, entryID)
}

func (s *entryStore) Delete(ctx context.Context, entryID string) error {
	if _, err := s.collection().Doc(entryID).Delete(ctx); err != nil {
		return errs.FromFirestore("delete", "failed to delete entry", "entry not found", err)
	}
	return nil
}

// DeleteByBook removes every entry of a book and returns how many were deleted.
func (s *entryStore) DeleteByBook(ctx context.Context, bookID string) (int, error) {
	log := logger.FromContext(ctx)

	refs, err := s.collection().Where("bookId", "==", bookID).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.FromFirestore("read", "failed to list entries for deletion", "entries not found", err)
	}
	if len(refs) == 0 {
		return 0, nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, d := range refs {
		job, err := bw.Delete(d.Ref)
		if err != nil {
			bw.End()
			return 0, errs.NewDatabaseError("delete", "failed to schedule entry deletion", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			log.Error("failed to delete entry", "entry_id", refs[i].Ref.ID, "error", err)
			return 0, errs.NewDatabaseError("delete", "failed to delete entry", err)
		}
	}
	return len(jobs), nil
}

func entryFromSnapshot(doc *firestore.DocumentSnapshot) (*models.Entry, error) {
	var d entryDocument
	if err := doc.DataTo(&d); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse entry data", err)
	}
	e := d.toModel(doc.Ref.ID)
	return &e, nil
}
