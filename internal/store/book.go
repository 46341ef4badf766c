package store

import (
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

type bookStore struct {
	client *firestore.Client
}

func NewBookStore(client *firestore.Client) *bookStore {
	return &bookStore{client: client}
}

func (s *bookStore) collection() *firestore.CollectionRef {
	return s.client.Collection("books")
}

// Create stores a new book and returns it with its server-assigned createdAt.
func (s *bookStore) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if _, err := s.collection().Doc(book.ID).Create(ctx, book); err != nil {
		return nil, errs.FromFirestore("create", "failed to create book", "book not found", err)
	}
	return s.Get(ctx, book.ID)
}

func (s *bookStore) Get(ctx context.Context, bookID string) (*models.Book, error) {
	doc, err := s.collection().Doc(bookID).Get(ctx)
	if err != nil {
		return nil, errs.FromFirestore("read", "failed to get book", "book not found", err)
	}
	return bookFromSnapshot(doc)
}

// ListByOwner returns the user's books, newest first.
func (s *bookStore) ListByOwner(ctx context.Context, uid string) ([]*models.Book, error) {
	docs, err := s.collection().Where("ownerUid", "==", uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.FromFirestore("read", "failed to list books", "books not found", err)
	}
	books := make([]*models.Book, 0, len(docs))
	for _, d := range docs {
		b, err := bookFromSnapshot(d)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	slices.SortStableFunc(books, func(a, b *models.Book) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return books, nil
}

func (s *bookStore) Delete(ctx context.Context, bookID string) error {
	_, err := s.collection().Doc(bookID).Delete(ctx)
	if err != nil {
		return errs.FromFirestore("delete", "failed to delete book", "book not found", err)
	}
	return nil
}

func bookFromSnapshot(doc *firestore.DocumentSnapshot) (*models.Book, error) {
	var b models.Book
	if err := doc.DataTo(&b); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse book data", err)
	}
	b.ID = doc.Ref.ID
	return &b, nil
}
