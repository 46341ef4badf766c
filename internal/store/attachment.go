package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

// Object path
// attachments/{uid}/{entryID}/{fileName}

const downloadTokenKey = "firebaseStorageDownloadTokens"

type attachmentStore struct {
	bucket *storage.BucketHandle
}

func NewAttachmentStore(bucket *storage.BucketHandle) *attachmentStore {
	return &attachmentStore{bucket: bucket}
}

func objectPrefix(uid, entryID string) string {
	return fmt.Sprintf("attachments/%s/%s/", uid, entryID)
}

func objectName(uid, entryID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "attachment"
	}
	return objectPrefix(uid, entryID) + name
}

// downloadURL builds the token-protected URL Firebase clients use to fetch an object.
func downloadURL(bucket, object, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(object), token)
}

// Upload writes the file and returns the stored object's name and download URL.
// A failed write is abandoned rather than committed.
func (s *attachmentStore) Upload(ctx context.Context, uid, entryID string, a dto.Attachment, r io.Reader) (dto.StoredAttachment, error) {
	name := objectName(uid, entryID, a.FileName)
	token := uuid.NewString()

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.bucket.Object(name).NewWriter(wctx)
	w.ContentType = a.ContentType
	w.Metadata = map[string]string{downloadTokenKey: token}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		return dto.StoredAttachment{}, errs.NewExternalServiceError("storage", "failed to upload attachment", false, err)
	}
	if err := w.Close(); err != nil {
		return dto.StoredAttachment{}, errs.NewExternalServiceError("storage", "failed to upload attachment", false, err)
	}

	logger.FromContext(ctx).Info("attachment uploaded", "object", name, "size", a.Size)
	return dto.StoredAttachment{
		Object: name,
		URL:    downloadURL(s.bucket.BucketName(), name, token),
	}, nil
}

// DeleteForEntry removes every object stored for an entry.
func (s *attachmentStore) DeleteForEntry(ctx context.Context, uid, entryID string) error {
	return s.deleteUnder(ctx, objectPrefix(uid, entryID), "")
}

// DeleteStale removes an entry's objects other than keep.
func (s *attachmentStore) DeleteStale(ctx context.Context, uid, entryID, keep string) error {
	return s.deleteUnder(ctx, objectPrefix(uid, entryID), keep)
}

func (s *attachmentStore) deleteUnder(ctx context.Context, prefix, keep string) error {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errs.NewExternalServiceError("storage", "failed to list attachments", false, err)
		}
		if attrs.Name == keep {
			continue
		}
		err = s.bucket.Object(attrs.Name).Delete(ctx)
		if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return errs.NewExternalServiceError("storage", "failed to delete attachment", false, err)
		}
	}
}
