package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/ledger"
	"github.com/GregMSThompson/ledger-backend/internal/middleware"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/internal/response"
)

type bookService interface {
	ListBooks(ctx context.Context, uid string) ([]dto.BookSummary, error)
	CreateBook(ctx context.Context, uid string, req dto.CreateBookRequest) (*models.Book, error)
	GetBookDetail(ctx context.Context, uid, bookID string, spec ledger.FilterSpec) (*dto.BookDetail, error)
	DeleteBook(ctx context.Context, uid, bookID string) error
}

type bookHandlers struct {
	ResponseHandler response.ResponseHandler
	BookSvc         bookService
	entries         *entryHandlers
}

func NewBookHandlers(deps *Deps) *bookHandlers {
	return &bookHandlers{
		ResponseHandler: deps.ResponseHandler,
		BookSvc:         deps.BookSvc,
		entries:         NewEntryHandlers(deps),
	}
}

func (h *bookHandlers) BookRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBooks)
	r.Post("/", h.CreateBook)
	r.Route("/{bookId}", func(r chi.Router) {
		r.Get("/", h.GetBook)
		r.Delete("/", h.DeleteBook)
		r.Mount("/entries", h.entries.EntryRoutes())
	})
	return r
}

func (h *bookHandlers) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookSvc.ListBooks(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if books == nil {
		books = []dto.BookSummary{}
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, books)
}

func (h *bookHandlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	book, err := h.BookSvc.CreateBook(r.Context(), middleware.UID(r.Context()), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, book)
}

// GetBook returns the book detail, filtered by the query string.
func (h *bookHandlers) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	spec := ledger.ParseFilterSpec(r.URL.Query())

	detail, err := h.BookSvc.GetBookDetail(r.Context(), middleware.UID(r.Context()), bookID, spec)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}

func (h *bookHandlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	if err := h.BookSvc.DeleteBook(r.Context(), middleware.UID(r.Context()), bookID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
