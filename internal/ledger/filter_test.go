package ledger

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func ids(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func sampleEntries() []models.Entry {
	return []models.Entry{
		{ID: "e1", Type: models.EntryIncome, Amount: amount("500"), Date: day(2025, time.March, 20, 9), Tags: []string{"salary"}},
		{ID: "e2", Type: models.EntryExpense, Amount: amount("120"), Date: day(2025, time.March, 15, 18), Tags: []string{"food", "dining"}},
		{ID: "e3", Type: models.EntryExpense, Amount: amount("80"), Date: day(2025, time.March, 10, 0), Tags: nil},
		{ID: "e4", Type: models.EntryExpense, Amount: amount("45.50"), Date: day(2025, time.March, 1, 23), Tags: []string{"travel"}},
	}
}

func TestFilterEntriesIdentity(t *testing.T) {
	entries := sampleEntries()

	got := FilterEntries(entries, FilterSpec{Type: TypeAll})

	assert.Equal(t, entries, got)
	assert.Equal(t, entries, FilterEntries(entries, FilterSpec{}))
}

func TestFilterEntriesByType(t *testing.T) {
	got := FilterEntries(sampleEntries(), FilterSpec{Type: "expense"})

	assert.Equal(t, []string{"e2", "e3", "e4"}, ids(got))
}

func TestFilterEntriesExampleExpenseOnly(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", Type: models.EntryIncome, Amount: amount("500")},
		{ID: "b", Type: models.EntryExpense, Amount: amount("120")},
		{ID: "c", Type: models.EntryExpense, Amount: amount("80")},
	}

	got := FilterEntries(entries, FilterSpec{Type: "expense"})

	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestFilterEntriesTagsAreOred(t *testing.T) {
	entries := []models.Entry{
		{ID: "food", Tags: []string{"food"}},
		{ID: "none", Tags: []string{}},
		{ID: "other", Tags: []string{"rent"}},
		{ID: "mixed", Tags: []string{"Travel"}},
	}

	got := FilterEntries(entries, FilterSpec{Tags: []string{"food", " TRAVEL "}})

	assert.Equal(t, []string{"food", "mixed"}, ids(got))
}

func TestFilterEntriesUntaggedNeverMatchesTagFilter(t *testing.T) {
	entries := []models.Entry{{ID: "nil"}, {ID: "empty", Tags: []string{}}}

	got := FilterEntries(entries, FilterSpec{Tags: []string{"anything"}})

	assert.Empty(t, got)
}

func TestFilterEntriesBlankTagsAreIgnored(t *testing.T) {
	entries := sampleEntries()

	got := FilterEntries(entries, FilterSpec{Tags: []string{" ", ""}})

	assert.Equal(t, entries, got)
}

func TestFilterEntriesDateRangeIsInclusiveByDay(t *testing.T) {
	got := FilterEntries(sampleEntries(), FilterSpec{DateFrom: "2025-03-10", DateTo: "2025-03-15"})

	assert.Equal(t, []string{"e2", "e3"}, ids(got))
}

func TestFilterEntriesOpenEndedDates(t *testing.T) {
	from := FilterEntries(sampleEntries(), FilterSpec{DateFrom: "2025-03-11"})
	to := FilterEntries(sampleEntries(), FilterSpec{DateTo: "2025-03-09"})

	assert.Equal(t, []string{"e1", "e2"}, ids(from))
	assert.Equal(t, []string{"e4"}, ids(to))
}

func TestFilterEntriesDateBoundsUseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	entries := []models.Entry{
		// 2025-03-02 00:30 in UTC+2
		{ID: "late", Date: time.Date(2025, time.March, 1, 22, 30, 0, 0, time.UTC)},
	}

	utc := FilterEntries(entries, FilterSpec{DateFrom: "2025-03-02"})
	local := FilterEntries(entries, FilterSpec{DateFrom: "2025-03-02", Location: loc})

	assert.Empty(t, utc)
	assert.Equal(t, []string{"late"}, ids(local))
}

func TestFilterEntriesAmountRange(t *testing.T) {
	got := FilterEntries(sampleEntries(), FilterSpec{AmountMin: "80", AmountMax: "120"})

	assert.Equal(t, []string{"e2", "e3"}, ids(got))
}

func TestFilterEntriesMalformedInputDegradesPerCriterion(t *testing.T) {
	entries := sampleEntries()

	assert.Equal(t,
		FilterEntries(entries, FilterSpec{AmountMin: ""}),
		FilterEntries(entries, FilterSpec{AmountMin: "abc"}),
	)

	got := FilterEntries(entries, FilterSpec{
		Type:      "expense",
		AmountMin: "abc",
		AmountMax: "100",
		DateFrom:  "not-a-date",
		DateTo:    "2025-13-45",
	})
	assert.Equal(t, []string{"e3", "e4"}, ids(got))
}

func TestFilterEntriesPreservesOrderAsSubsequence(t *testing.T) {
	entries := sampleEntries()
	specs := []FilterSpec{
		{Type: "income"},
		{Tags: []string{"travel", "food"}},
		{AmountMax: "100"},
		{DateFrom: "2025-03-02", Type: "expense"},
	}

	for _, spec := range specs {
		got := FilterEntries(entries, spec)
		next := 0
		for _, e := range got {
			for next < len(entries) && entries[next].ID != e.ID {
				next++
			}
			require.Less(t, next, len(entries), "%s is out of order for %+v", e.ID, spec)
			next++
		}
	}
}

func TestFilterEntriesDoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	before := sampleEntries()

	FilterEntries(entries, FilterSpec{Type: "income"})

	assert.Equal(t, before, entries)
}

func TestParseFilterSpec(t *testing.T) {
	q := url.Values{}
	q.Set("type", "expense")
	q.Add("tags", "Food, travel")
	q.Add("tags", "food")
	q.Set("dateFrom", "2025-01-01")
	q.Set("amountMax", "50")

	spec := ParseFilterSpec(q)

	assert.Equal(t, "expense", spec.Type)
	assert.Equal(t, []string{"food", "travel"}, spec.Tags)
	assert.Equal(t, "2025-01-01", spec.DateFrom)
	assert.Equal(t, "", spec.DateTo)
	assert.Equal(t, "50", spec.AmountMax)
	assert.True(t, spec.IsActive())
}

func TestFilterSpecIsActive(t *testing.T) {
	assert.False(t, FilterSpec{}.IsActive())
	assert.False(t, FilterSpec{Type: TypeAll, Tags: []string{" "}}.IsActive())
	assert.True(t, FilterSpec{Type: "income"}.IsActive())
	assert.True(t, FilterSpec{AmountMin: "abc"}.IsActive())
}
