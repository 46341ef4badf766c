package ledger

import (
	"slices"
	"strings"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

// MaxSuggestions caps the length of a suggestion list.
const MaxSuggestions = 5

// NormalizeTag lower-cases and trims a tag name.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeTags returns the distinct normalized tags in first-seen order. Blank
// names are dropped.
func NormalizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		out = AddTag(out, t)
	}
	return out
}

// AddTag appends the normalized form of raw unless it is blank or already present.
// Like append, the result may share tags' backing array.
func AddTag(tags []string, raw string) []string {
	name := NormalizeTag(raw)
	if name == "" || hasTag(tags, name) {
		return tags
	}
	return append(tags, name)
}

func hasTag(tags []string, name string) bool {
	return slices.ContainsFunc(tags, func(t string) bool {
		return NormalizeTag(t) == name
	})
}

// RankSuggestions returns up to MaxSuggestions tags whose name contains prefix
// (case-insensitive) and that are not in excluded, most recently used first. Ties
// keep their input order. The prefix is matched as typed, spaces included; an empty
// prefix yields no suggestions.
func RankSuggestions(tags []models.UserTag, prefix string, excluded []string) []models.UserTag {
	needle := strings.ToLower(prefix)
	if needle == "" {
		return []models.UserTag{}
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, t := range excluded {
		skip[NormalizeTag(t)] = struct{}{}
	}

	matches := make([]models.UserTag, 0, len(tags))
	for _, t := range tags {
		if !strings.Contains(strings.ToLower(t.Name), needle) {
			continue
		}
		if _, ok := skip[NormalizeTag(t.Name)]; ok {
			continue
		}
		matches = append(matches, t)
	}

	slices.SortStableFunc(matches, func(a, b models.UserTag) int {
		return b.LastUsedAt.Compare(a.LastUsedAt)
	})

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}
