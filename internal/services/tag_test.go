package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/ledger-backend/internal/models"
	"github.com/GregMSThompson/ledger-backend/pkg/helpers"
)

func tagVocabulary() []models.UserTag {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.UserTag{
		{Name: "food", LastUsedAt: base},
		{Name: "fuel", LastUsedAt: base.Add(48 * time.Hour)},
		{Name: "rent", LastUsedAt: base.Add(24 * time.Hour)},
	}
}

func TestTagServiceListTagsByRecency(t *testing.T) {
	svc := NewTagService(&fakeTagStore{tags: tagVocabulary()})

	tags, err := svc.ListTags(helpers.TestCtx(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"fuel", "rent", "food"}, []string{tags[0].Name, tags[1].Name, tags[2].Name})
}

func TestTagServiceSuggest(t *testing.T) {
	svc := NewTagService(&fakeTagStore{tags: tagVocabulary()})

	got, err := svc.Suggest(helpers.TestCtx(), "u1", "F", []string{"fuel"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "food", got[0].Name)
}

func TestTagServiceSuggestEmptyPrefixSkipsStore(t *testing.T) {
	store := &fakeTagStore{listErr: assert.AnError}
	svc := NewTagService(store)

	got, err := svc.Suggest(helpers.TestCtx(), "u1", "", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
