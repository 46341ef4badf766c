package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/middleware"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/internal/response"
)

type UserService interface {
	Register(ctx context.Context, uid, email string, req dto.RegisterUserRequest) (*models.User, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateUser)
	r.Get("/me", h.GetMe)
	return r
}

// CreateUser registers the signed-in user. An empty body is accepted.
func (h *userHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
	}

	ctx := r.Context()
	user, err := h.UserSvc.Register(ctx, middleware.UID(ctx), middleware.Email(ctx), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserSvc.GetUser(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}
