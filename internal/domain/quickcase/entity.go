// internal/domain/quickcase/entity.go
package quickcase

import "time"

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

// QuickCase is a minimal phone-only lead awaiting promotion into a full
// Customer + Case pair. The only transition is incomplete -> completed.
type QuickCase struct {
	ID     string `json:"id"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes,omitempty"`
	Status Status `json:"status"`

	CreatedBy string `json:"created_by"`
	// CreatedByName is denormalized so lists render without an admin join.
	CreatedByName string `json:"created_by_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateQuickCaseRequest struct {
	Phone string `json:"phone" binding:"required,max=20"`
	Notes string `json:"notes" binding:"max=2048"`
}
