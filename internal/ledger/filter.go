package ledger

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/ledger-backend/internal/models"
)

const (
	DateLayout = "2006-01-02"

	TypeAll = "all"
)

// FilterSpec holds the user-chosen criteria narrowing an entry list. Date and amount
// bounds are kept as raw input; values that fail to parse leave that criterion
// unconstrained.
type FilterSpec struct {
	Type      string   `json:"type"` // "all", "income" or "expense"; empty means all
	Tags      []string `json:"tags"`
	DateFrom  string   `json:"dateFrom"`
	DateTo    string   `json:"dateTo"`
	AmountMin string   `json:"amountMin"`
	AmountMax string   `json:"amountMax"`

	// Location the calendar bounds are interpreted in. Nil means UTC.
	Location *time.Location `json:"-"`
}

// ParseFilterSpec reads a spec from query parameters. Tags may be repeated and/or
// comma separated.
func ParseFilterSpec(q url.Values) FilterSpec {
	var tags []string
	for _, v := range q["tags"] {
		for _, t := range strings.Split(v, ",") {
			tags = AddTag(tags, t)
		}
	}
	return FilterSpec{
		Type:      strings.TrimSpace(q.Get("type")),
		Tags:      tags,
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
		AmountMin: q.Get("amountMin"),
		AmountMax: q.Get("amountMax"),
	}
}

// IsActive reports whether any criterion narrows the list.
func (s FilterSpec) IsActive() bool {
	if s.Type != "" && s.Type != TypeAll {
		return true
	}
	if len(NormalizeTags(s.Tags)) > 0 {
		return true
	}
	for _, v := range []string{s.DateFrom, s.DateTo, s.AmountMin, s.AmountMax} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// FilterEntries returns the entries matching every active criterion of spec, in their
// original order. Within the tag criterion one shared tag is enough.
func FilterEntries(entries []models.Entry, spec FilterSpec) []models.Entry {
	c := spec.compile()
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if c.match(e) {
			out = append(out, e)
		}
	}
	return out
}

type criteria struct {
	typ    string
	tags   map[string]struct{}
	from   time.Time
	before time.Time // exclusive: start of the day after DateTo
	min    decimal.Decimal
	max    decimal.Decimal

	hasFrom, hasTo, hasMin, hasMax bool
}

func (s FilterSpec) compile() criteria {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	var c criteria
	if s.Type != TypeAll {
		c.typ = s.Type
	}
	if tags := NormalizeTags(s.Tags); len(tags) > 0 {
		c.tags = make(map[string]struct{}, len(tags))
		for _, t := range tags {
			c.tags[t] = struct{}{}
		}
	}
	c.from, c.hasFrom = parseDate(s.DateFrom, loc)
	if to, ok := parseDate(s.DateTo, loc); ok {
		c.before, c.hasTo = to.AddDate(0, 0, 1), true
	}
	c.min, c.hasMin = parseAmount(s.AmountMin)
	c.max, c.hasMax = parseAmount(s.AmountMax)
	return c
}

func (c criteria) match(e models.Entry) bool {
	if c.typ != "" && string(e.Type) != c.typ {
		return false
	}
	if c.tags != nil && !c.anyTag(e.Tags) {
		return false
	}
	if c.hasFrom && e.Date.Before(c.from) {
		return false
	}
	if c.hasTo && !e.Date.Before(c.before) {
		return false
	}
	if c.hasMin && e.Amount.LessThan(c.min) {
		return false
	}
	if c.hasMax && e.Amount.GreaterThan(c.max) {
		return false
	}
	return true
}

func (c criteria) anyTag(tags []string) bool {
	for _, t := range tags {
		if _, ok := c.tags[NormalizeTag(t)]; ok {
			return true
		}
	}
	return false
}

func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
