package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ledger-backend/internal/middleware"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/internal/response"
)

type tagService interface {
	ListTags(ctx context.Context, uid string) ([]models.UserTag, error)
	Suggest(ctx context.Context, uid, prefix string, excluded []string) ([]models.UserTag, error)
}

type tagHandlers struct {
	ResponseHandler response.ResponseHandler
	TagSvc          tagService
}

func NewTagHandlers(deps *Deps) *tagHandlers {
	return &tagHandlers{
		ResponseHandler: deps.ResponseHandler,
		TagSvc:          deps.TagSvc,
	}
}

func (h *tagHandlers) TagRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTags)
	r.Get("/suggestions", h.Suggest)
	return r
}

func (h *tagHandlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagSvc.ListTags(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tags)
}

// Suggest ranks the vocabulary against ?q=, skipping tags listed in ?exclude=
// (comma separated or repeated).
func (h *tagHandlers) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var excluded []string
	for _, v := range q["exclude"] {
		excluded = append(excluded, strings.Split(v, ",")...)
	}

	tags, err := h.TagSvc.Suggest(r.Context(), middleware.UID(r.Context()), q.Get("q"), excluded)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tags)
}
