package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

// Tag names arrive normalized; the name is the document ID.
type tagStore struct {
	client *firestore.Client
}

func NewTagStore(client *firestore.Client) *tagStore {
	return &tagStore{client: client}
}

func (s *tagStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("tags")
}

func (s *tagStore) List(ctx context.Context, uid string) ([]models.UserTag, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.FromFirestore("read", "failed to list tags", "tags not found", err)
	}
	tags := make([]models.UserTag, 0, len(docs))
	for _, d := range docs {
		var t models.UserTag
		if err := d.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse tag data", err)
		}
		if t.Name == "" {
			t.Name = d.Ref.ID
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func tagData(name string) map[string]any {
	return map[string]any{
		"name":       name,
		"lastUsedAt": firestore.ServerTimestamp,
	}
}

// Upsert creates the tag or refreshes its lastUsedAt.
func (s *tagStore) Upsert(ctx context.Context, uid, name string) error {
	if name == "" {
		return nil
	}
	_, err := s.collection(uid).Doc(name).Set(ctx, tagData(name), firestore.MergeAll)
	if err != nil {
		return errs.FromFirestore("update", "failed to upsert tag", "tag not found", err)
	}
	return nil
}

// UpsertMany upserts several tags in one bulk write.
func (s *tagStore) UpsertMany(ctx context.Context, uid string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) == 1 {
		return s.Upsert(ctx, uid, names[0])
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		job, err := bw.Set(s.collection(uid).Doc(name), tagData(name), firestore.MergeAll)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("update", "failed to schedule tag upsert", err)
		}
		jobs = append(jobs, job)
	}

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("update", "failed to upsert tag", err)
		}
	}
	return nil
}
