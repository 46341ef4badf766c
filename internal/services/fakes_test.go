package services

import (
	"context"
	"io"
	"sync"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

// callLog records cross-store calls so tests can check ordering.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

type fakeBookStore struct {
	books     map[string]*models.Book
	created   *models.Book
	createErr error
	getErr    error
	deleteErr error
	log       *callLog
}

func (f *fakeBookStore) Create(_ context.Context, book models.Book) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	book.ID = "book-new"
	f.created = &book
	return &book, nil
}

func (f *fakeBookStore) Get(_ context.Context, bookID string) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.books[bookID]
	if !ok {
		return nil, errs.NewNotFoundError("book not found")
	}
	return b, nil
}

func (f *fakeBookStore) ListByOwner(_ context.Context, uid string) ([]*models.Book, error) {
	var out []*models.Book
	for _, b := range f.books {
		if b.OwnerUID == uid {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookStore) Delete(_ context.Context, bookID string) error {
	f.log.add("book:" + bookID)
	return f.deleteErr
}

type fakeEntryStore struct {
	entries   map[string]*models.Entry
	listErr   error
	deleteErr error
	created   *models.Entry
	updates   []dto.EntryUpdate
	deleted   []string
	log       *callLog
}

func (f *fakeEntryStore) Create(_ context.Context, e models.Entry) (*models.Entry, error) {
	e.ID = "entry-new"
	f.created = &e
	return &e, nil
}

func (f *fakeEntryStore) Get(_ context.Context, entryID string) (*models.Entry, error) {
	e, ok := f.entries[entryID]
	if !ok {
		return nil, errs.NewNotFoundError("entry not found")
	}
	return e, nil
}

func (f *fakeEntryStore) ListByBook(_ context.Context, bookID string) ([]models.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Entry
	for _, e := range f.entries {
		if e.BookID == bookID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) Update(_ context.Context, entryID string, u dto.EntryUpdate) (*models.Entry, error) {
	f.updates = append(f.updates, u)
	e := *f.entries[entryID]
	if v, ok := u.AttachmentURL.Get(); ok {
		e.AttachmentURL = v
	}
	if v, ok := u.Tags.Get(); ok {
		e.Tags = v
	}
	return &e, nil
}

func (f *fakeEntryStore) Delete(_ context.Context, entryID string) error {
	f.deleted = append(f.deleted, entryID)
	return f.deleteErr
}

func (f *fakeEntryStore) DeleteByBook(_ context.Context, bookID string) (int, error) {
	f.log.add("entries:" + bookID)
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	n := 0
	for _, e := range f.entries {
		if e.BookID == bookID {
			n++
		}
	}
	return n, nil
}

type fakeTagStore struct {
	tags      []models.UserTag
	listErr   error
	upsertErr error
	upserted  [][]string
}

func (f *fakeTagStore) List(_ context.Context, _ string) ([]models.UserTag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.UserTag(nil), f.tags...), nil
}

func (f *fakeTagStore) UpsertMany(_ context.Context, _ string, names []string) error {
	f.upserted = append(f.upserted, names)
	return f.upsertErr
}

type fakeAttachmentStore struct {
	uploaded  string
	uploadErr error
	deleted   []string
	stale     []string
	log       *callLog
}

func (f *fakeAttachmentStore) Upload(_ context.Context, uid, entryID string, a dto.Attachment, r io.Reader) (dto.StoredAttachment, error) {
	if f.uploadErr != nil {
		return dto.StoredAttachment{}, f.uploadErr
	}
	body, _ := io.ReadAll(r)
	f.uploaded = string(body)
	object := "attachments/" + uid + "/" + entryID + "/" + a.FileName
	return dto.StoredAttachment{
		Object: object,
		URL:    "https://files.example.com/" + uid + "/" + entryID + "/" + a.FileName,
	}, nil
}

func (f *fakeAttachmentStore) DeleteStale(_ context.Context, _ string, entryID, keep string) error {
	f.stale = append(f.stale, entryID+" keep "+keep)
	return nil
}

func (f *fakeAttachmentStore) DeleteForEntry(_ context.Context, _ string, entryID string) error {
	f.deleted = append(f.deleted, entryID)
	f.log.add("attachment:" + entryID)
	return nil
}
