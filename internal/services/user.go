package services

import (
	"context"
	"errors"
	"strings"

	"github.com/GregMSThompson/ledger-backend/internal/dto"
	"github.com/GregMSThompson/ledger-backend/internal/errs"
	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	Store    userUSStore
	validate validator
}

func NewUserService(store userUSStore, v validator) *userService {
	return &userService{
		Store:    store,
		validate: v,
	}
}

// Register creates the profile on first sign-in. Registering again returns the
// stored profile unchanged.
func (s *userService) Register(ctx context.Context, uid, email string, req dto.RegisterUserRequest) (*models.User, error) {
	// Get logger from context - already has uid, request_id, method, path
	log := logger.FromContext(ctx)

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	user := &models.User{
		UID:         uid,
		Email:       email,
		DisplayName: req.DisplayName,
	}

	err := s.Store.CreateUser(ctx, user)
	var exists *errs.AlreadyExistsError
	if errors.As(err, &exists) {
		log.Debug("user already registered")
		return s.Store.GetUser(ctx, uid)
	}
	if err != nil {
		log.Error("failed to create user in store", "error", err)
		return nil, err
	}

	log.Info("user created successfully")
	return s.Store.GetUser(ctx, uid)
}

func (s *userService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return s.Store.GetUser(ctx, uid)
}
