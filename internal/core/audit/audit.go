// Package audit computes the human-readable change log written to a
// campaign's history on every save.
package audit

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/locale"
)

const dateKey = "2006-01-02"

// Auditor diffs campaigns and renders changed values with a locale
// formatter. It holds no mutable state and is safe for concurrent use.
type Auditor struct {
	formatter *locale.Formatter
}

func New(f *locale.Formatter) *Auditor {
	if f == nil {
		f = locale.Default()
	}
	return &Auditor{formatter: f}
}

// ComputeChangeLog returns one line per auditable field whose value differs
// between original and proposed, in the order of Fields:
//
//	'<label>' alterado de "<old>" para "<new>".
func (a *Auditor) ComputeChangeLog(original, proposed domain.CampaignFields) []string {
	var changes []string
	for _, f := range Fields {
		before, after := f.Value(original), f.Value(proposed)
		if canonical(f.Kind, before) == canonical(f.Kind, after) {
			continue
		}
		changes = append(changes, fmt.Sprintf("'%s' alterado de \"%s\" para \"%s\".",
			f.Label, a.Format(f.Kind, before), a.Format(f.Kind, after)))
	}
	return changes
}

// Entry diffs original against proposed and wraps the result in a history
// entry attributed to actor.
func (a *Auditor) Entry(actor string, at time.Time, original, proposed domain.CampaignFields) domain.HistoryEntry {
	return domain.NewHistoryEntry(actor, at, a.ComputeChangeLog(original, proposed))
}

// Format renders v, produced by a Field of the given kind, for display.
func (a *Auditor) Format(kind Kind, v any) string {
	switch kind {
	case KindDate:
		t, _ := v.(*time.Time)
		if t == nil || t.IsZero() {
			return locale.Empty
		}
		return a.formatter.Date(*t)
	case KindMoney:
		d, _ := v.(*decimal.Decimal)
		if d == nil {
			return locale.Empty
		}
		return a.formatter.Currency(*d)
	case KindBool:
		b, _ := v.(bool)
		return a.formatter.Bool(b)
	case KindList:
		l, _ := v.([]string)
		return a.formatter.List(l)
	case KindBudgetMap:
		m, _ := v.(map[domain.MediaChannel]decimal.Decimal)
		return a.formatBudgets(m)
	default:
		s, _ := v.(string)
		return a.formatter.Text(s)
	}
}

func (a *Auditor) formatBudgets(m map[domain.MediaChannel]decimal.Decimal) string {
	if len(m) == 0 {
		return locale.Empty
	}
	parts := make([]string, 0, len(m))
	for _, ch := range domain.MediaChannels {
		if v, ok := m[ch]; ok {
			parts = append(parts, string(ch)+": "+a.formatter.Currency(v))
		}
	}
	// Unknown channels still show up, after the known ones.
	if len(parts) < len(m) {
		for _, ch := range slices.Sorted(maps.Keys(m)) {
			if !ch.Valid() {
				parts = append(parts, string(ch)+": "+a.formatter.Currency(m[ch]))
			}
		}
	}
	return strings.Join(parts, ", ")
}

// canonical maps a value to a string that is equal for equal values. Dates
// compare by calendar day; absent dates map to "", which never equals a day.
// Empty and nil collections are the same.
func canonical(kind Kind, v any) string {
	switch kind {
	case KindDate:
		t, _ := v.(*time.Time)
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(dateKey)
	case KindList:
		if l, _ := v.([]string); len(l) == 0 {
			return "[]"
		}
	case KindBudgetMap:
		if m, _ := v.(map[domain.MediaChannel]decimal.Decimal); len(m) == 0 {
			return "{}"
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
