package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/middleware"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/internal/response"
)

const defaultMaxUploadBytes = 10 << 20

type entryService interface {
	CreateEntry(ctx context.Context, uid, bookID string, req dto.CreateEntryRequest) (*models.Entry, error)
	GetEntry(ctx context.Context, uid, bookID, entryID string) (*models.Entry, error)
	UpdateEntry(ctx context.Context, uid, bookID, entryID string, req dto.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, uid, bookID, entryID string) error
	UploadAttachment(ctx context.Context, uid, bookID, entryID string, a dto.Attachment, r io.Reader) (*models.Entry, error)
}

type entryHandlers struct {
	ResponseHandler response.ResponseHandler
	EntrySvc        entryService
	maxUploadBytes  int64
}

func NewEntryHandlers(deps *Deps) *entryHandlers {
	limit := deps.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	return &entryHandlers{
		ResponseHandler: deps.ResponseHandler,
		EntrySvc:        deps.EntrySvc,
		maxUploadBytes:  limit,
	}
}

// EntryRoutes is mounted under /books/{bookId}/entries.
func (h *entryHandlers) EntryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateEntry)
	r.Get("/{entryId}", h.GetEntry)
	r.Patch("/{entryId}", h.UpdateEntry)
	r.Delete("/{entryId}", h.DeleteEntry)
	r.Post("/{entryId}/attachment", h.UploadAttachment)
	return r
}

func (h *entryHandlers) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	bookID := chi.URLParam(r, "bookId")
	entry, err := h.EntrySvc.CreateEntry(r.Context(), middleware.UID(r.Context()), bookID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, entry)
}

func (h *entryHandlers) GetEntry(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	entryID := chi.URLParam(r, "entryId")
	entry, err := h.EntrySvc.GetEntry(r.Context(), middleware.UID(r.Context()), bookID, entryID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, entry)
}

func (h *entryHandlers) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	bookID := chi.URLParam(r, "bookId")
	entryID := chi.URLParam(r, "entryId")
	entry, err := h.EntrySvc.UpdateEntry(r.Context(), middleware.UID(r.Context()), bookID, entryID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, entry)
}

func (h *entryHandlers) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	entryID := chi.URLParam(r, "entryId")
	if err := h.EntrySvc.DeleteEntry(r.Context(), middleware.UID(r.Context()), bookID, entryID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// UploadAttachment expects a multipart form with the file under "file".
func (h *entryHandlers) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.ResponseHandler.WriteError(w, r, http.StatusRequestEntityTooLarge, "file_too_large", "attachment exceeds upload limit")
			return
		}
		h.ResponseHandler.HandleError(w, r, errs.NewValidationErrorWithFields("invalid upload", map[string]string{"file": "is required"}))
		return
	}
	defer file.Close()

	a := dto.Attachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	bookID := chi.URLParam(r, "bookId")
	entryID := chi.URLParam(r, "entryId")
	entry, err := h.EntrySvc.UploadAttachment(r.Context(), middleware.UID(r.Context()), bookID, entryID, a, file)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, entry)
}
