package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

func vocabulary() []models.UserTag {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []models.UserTag{
		{Name: "food", LastUsedAt: t1},
		{Name: "fuel", LastUsedAt: t1.Add(time.Hour)},
		{Name: "rent", LastUsedAt: t1.Add(2 * time.Hour)},
	}
}

func TestTagInputStartsIdle(t *testing.T) {
	ti := NewTagInput(vocabulary(), []string{"Rent"})

	assert.Equal(t, TagInputIdle, ti.State())
	assert.Equal(t, []string{"rent"}, ti.Tags())
	assert.Empty(t, ti.Suggestions())
}

func TestTagInputTypingShowsSuggestions(t *testing.T) {
	ti := NewTagInput(vocabulary(), nil)

	ti.Type("f")

	assert.Equal(t, TagInputSuggesting, ti.State())
	assert.Equal(t, []string{"fuel", "food"}, names(ti.Suggestions()))

	ti.Type("")
	assert.Equal(t, TagInputIdle, ti.State())
}

func TestTagInputConfirmCommitsTypedTag(t *testing.T) {
	ti := NewTagInput(vocabulary(), nil)

	ti.Type("  Groceries ")
	ti.Confirm()

	assert.Equal(t, []string{"groceries"}, ti.Tags())
	assert.Equal(t, "", ti.Input())
	assert.Equal(t, TagInputIdle, ti.State())
}

func TestTagInputConfirmIgnoresBlankInput(t *testing.T) {
	ti := NewTagInput(vocabulary(), nil)

	ti.Type("   ")
	ti.Confirm()

	assert.Empty(t, ti.Tags())
	assert.Equal(t, TagInputSuggesting, ti.State())
}

func TestTagInputReAddingIsNoOp(t *testing.T) {
	ti := NewTagInput(vocabulary(), []string{"food"})

	ti.Type("Food ")
	ti.Confirm()

	assert.Equal(t, []string{"food"}, ti.Tags())
	assert.Equal(t, TagInputIdle, ti.State())
}

func TestTagInputSelectSuggestion(t *testing.T) {
	ti := NewTagInput(vocabulary(), nil)

	ti.Type("u")
	ti.Select("fuel")

	assert.Equal(t, []string{"fuel"}, ti.Tags())
	assert.Equal(t, TagInputIdle, ti.State())

	ti.Type("f")
	assert.Equal(t, []string{"food"}, names(ti.Suggestions()))
}

func TestTagInputBlurKeepsText(t *testing.T) {
	ti := NewTagInput(vocabulary(), nil)

	ti.Type("fo")
	ti.Blur()

	assert.Equal(t, TagInputIdle, ti.State())
	assert.Equal(t, "fo", ti.Input())
	assert.Empty(t, ti.Suggestions())
}

func TestTagInputEraseRemovesLastTag(t *testing.T) {
	ti := NewTagInput(vocabulary(), []string{"food", "rent"})

	assert.True(t, ti.Erase())
	assert.Equal(t, []string{"food"}, ti.Tags())

	ti.Type("x")
	assert.False(t, ti.Erase())
	assert.Equal(t, []string{"food"}, ti.Tags())

	ti.Type("")
	assert.True(t, ti.Erase())
	assert.False(t, ti.Erase())
	assert.Empty(t, ti.Tags())
}

func TestTagInputRemove(t *testing.T) {
	ti := NewTagInput(vocabulary(), []string{"food", "rent"})

	ti.Remove("FOOD")

	assert.Equal(t, []string{"rent"}, ti.Tags())
}
