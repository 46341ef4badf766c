package ledger

import (
	"slices"
	"strings"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

type TagInputState int

const (
	TagInputIdle TagInputState = iota
	TagInputSuggesting
)

func (s TagInputState) String() string {
	switch s {
	case TagInputSuggesting:
		return "suggesting"
	default:
		return "idle"
	}
}

// TagInput tracks the tags attached to an entry being edited together with the text
// currently typed, and decides when suggestions are shown.
type TagInput struct {
	vocabulary []models.UserTag
	tags       []string
	input      string
	state      TagInputState
}

func NewTagInput(vocabulary []models.UserTag, tags []string) *TagInput {
	return &TagInput{
		vocabulary: vocabulary,
		tags:       NormalizeTags(tags),
	}
}

func (ti *TagInput) State() TagInputState { return ti.state }
func (ti *TagInput) Input() string        { return ti.input }

func (ti *TagInput) Tags() []string {
	return slices.Clone(ti.tags)
}

// Type replaces the typed text. Any non-empty text opens the suggestion panel.
func (ti *TagInput) Type(text string) {
	ti.input = text
	if text == "" {
		ti.state = TagInputIdle
		return
	}
	ti.state = TagInputSuggesting
}

// Confirm commits the typed text as a tag. It does nothing while the input is blank.
// Committing a tag that is already attached leaves the tags unchanged.
func (ti *TagInput) Confirm() {
	if strings.TrimSpace(ti.input) == "" {
		return
	}
	ti.commit(ti.input)
}

// Select commits a suggested tag.
func (ti *TagInput) Select(name string) {
	ti.commit(name)
}

// Blur closes the suggestion panel, keeping the typed text.
func (ti *TagInput) Blur() {
	ti.state = TagInputIdle
}

// Erase removes the most recently added tag when nothing is typed. It reports whether
// a tag was removed.
func (ti *TagInput) Erase() bool {
	if ti.input != "" || len(ti.tags) == 0 {
		return false
	}
	ti.tags = ti.tags[:len(ti.tags)-1]
	return true
}

func (ti *TagInput) Remove(name string) {
	name = NormalizeTag(name)
	ti.tags = slices.DeleteFunc(ti.tags, func(t string) bool { return t == name })
}

// Suggestions ranks the vocabulary against the typed text while the panel is open.
func (ti *TagInput) Suggestions() []models.UserTag {
	if ti.state != TagInputSuggesting {
		return []models.UserTag{}
	}
	return RankSuggestions(ti.vocabulary, ti.input, ti.tags)
}

func (ti *TagInput) commit(raw string) {
	ti.tags = AddTag(ti.tags, raw)
	ti.input = ""
	ti.state = TagInputIdle
}
