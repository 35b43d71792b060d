package domain

import (
	"slices"
	"time"
)

// Fixed change messages used when a save has no field-level change to
// describe.
const (
	ChangeCreated   = "Projeto criado."
	ChangeNoChanges = "Nenhuma alteração de campo detectada, apenas salvamento."
)

// HistoryEntry is an immutable audit record of one save. Actor is a snapshot
// of the display name at edit time, not a reference to a user.
type HistoryEntry struct {
	Actor     string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Changes   []string  `json:"changes"`
}

// NewHistoryEntry builds the entry for a save. An empty change list is
// replaced by the ChangeNoChanges sentinel so that no entry is ever empty.
func NewHistoryEntry(actor string, at time.Time, changes []string) HistoryEntry {
	if len(changes) == 0 {
		changes = []string{ChangeNoChanges}
	}
	return HistoryEntry{Actor: actor, Timestamp: at, Changes: slices.Clone(changes)}
}

func (h HistoryEntry) Clone() HistoryEntry {
	h.Changes = slices.Clone(h.Changes)
	return h
}
