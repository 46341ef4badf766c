package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

func names(tags []models.UserTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "food", NormalizeTag("  Food "))
	assert.Equal(t, "", NormalizeTag("   "))
}

func TestNormalizeTagsCollapsesDuplicates(t *testing.T) {
	got := NormalizeTags([]string{"Food", "travel", " food", "", "TRAVEL "})

	assert.Equal(t, []string{"food", "travel"}, got)
}

func TestAddTagIsIdempotent(t *testing.T) {
	tags := []string{"food"}

	got := AddTag(tags, "Food ")

	assert.Equal(t, []string{"food"}, got)
}

func TestAddTagSkipsBlank(t *testing.T) {
	assert.Empty(t, AddTag(nil, "  "))
}

func TestRankSuggestionsEmptyPrefix(t *testing.T) {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tags := []models.UserTag{
		{Name: "food", LastUsedAt: t1},
		{Name: "travel", LastUsedAt: t1.Add(time.Hour)},
	}

	got := RankSuggestions(tags, "", nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankSuggestionsMatchesPrefixAsTyped(t *testing.T) {
	tags := []models.UserTag{{Name: "food"}, {Name: "fast food"}}

	assert.Equal(t, []string{"fast food"}, names(RankSuggestions(tags, "t F", nil)))
	assert.Empty(t, RankSuggestions(tags, "food ", nil))
	assert.Equal(t, []string{"fast food"}, names(RankSuggestions(tags, " ", nil)))
}

func TestRankSuggestionsOrdersByRecency(t *testing.T) {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tags := []models.UserTag{
		{Name: "bar", LastUsedAt: t1},
		{Name: "cafe", LastUsedAt: t1.Add(time.Hour)},
	}

	got := RankSuggestions(tags, "a", nil)

	assert.Equal(t, []string{"cafe", "bar"}, names(got))
}

func TestRankSuggestionsSubstringCaseInsensitive(t *testing.T) {
	tags := []models.UserTag{{Name: "groceries"}, {Name: "rent"}, {Name: "car"}}

	got := RankSuggestions(tags, "CER", nil)

	assert.Equal(t, []string{"groceries"}, names(got))
}

func TestRankSuggestionsSkipsAttached(t *testing.T) {
	tags := []models.UserTag{{Name: "food"}, {Name: "fuel"}}

	got := RankSuggestions(tags, "f", []string{"Food"})

	assert.Equal(t, []string{"fuel"}, names(got))
}

func TestRankSuggestionsStableAndCapped(t *testing.T) {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tags := []models.UserTag{
		{Name: "t1", LastUsedAt: t1},
		{Name: "t2", LastUsedAt: t1},
		{Name: "t3"},
		{Name: "t4", LastUsedAt: t1.Add(time.Minute)},
		{Name: "t5", LastUsedAt: t1},
		{Name: "t6", LastUsedAt: t1},
		{Name: "t7", LastUsedAt: t1},
	}

	got := RankSuggestions(tags, "t", nil)

	assert.Equal(t, []string{"t4", "t1", "t2", "t5", "t6"}, names(got))
}

func TestRankSuggestionsDoesNotReorderInput(t *testing.T) {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tags := []models.UserTag{
		{Name: "bar", LastUsedAt: t1},
		{Name: "cafe", LastUsedAt: t1.Add(time.Hour)},
	}

	RankSuggestions(tags, "a", nil)

	assert.Equal(t, []string{"bar", "cafe"}, names(tags))
}
