package services

import (
	"context"
	"slices"

	"github.com/GregMSThompson/ledger-backend/internal/ledger"
	"github.com/GregMSThompson/ledger-backend/internal/models"
)

type tagTGStore interface {
	List(ctx context.Context, uid string) ([]models.UserTag, error)
}

type tagService struct {
	tags tagTGStore
}

func NewTagService(tags tagTGStore) *tagService {
	return &tagService{tags: tags}
}

// ListTags returns the user's vocabulary, most recently used first.
func (s *tagService) ListTags(ctx context.Context, uid string) ([]models.UserTag, error) {
	tags, err := s.tags.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(tags, func(a, b models.UserTag) int {
		return b.LastUsedAt.Compare(a.LastUsedAt)
	})
	return tags, nil
}

func (s *tagService) Suggest(ctx context.Context, uid, prefix string, excluded []string) ([]models.UserTag, error) {
	if prefix == "" {
		return []models.UserTag{}, nil
	}
	tags, err := s.tags.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	return ledger.RankSuggestions(tags, prefix, excluded), nil
}
