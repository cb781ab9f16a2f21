// internal/domain/history/entity.go
package history

import (
	"time"

	"caseflow-service/internal/pkg/actor"
)

type EntryType string

const (
	TypeCreated       EntryType = "created"
	TypeUpdated       EntryType = "updated"
	TypeStatusChanged EntryType = "status_changed"
	TypeNoteAdded     EntryType = "note_added"
	TypeDeleted       EntryType = "deleted"
)

// Entry is one append-only audit record. At least one of CaseID and
// CustomerID is always set. Entries are never updated or deleted.
type Entry struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"case_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Type       EntryType `json:"type"`
	Message    string    `json:"message"`

	// Actor is the full snapshot captured at write time. Later changes to
	// the admin's profile must not retroactively change historical entries.
	Actor actor.Actor `json:"actor"`

	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
