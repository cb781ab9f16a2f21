// internal/domain/reminder/entity.go
package reminder

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Reminder struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`

	AssignedTo      []string `json:"assigned_to"`
	AssignedToNames []string `json:"assigned_to_names"`
	AssignedBy      string   `json:"assigned_by"`
	AssignedByName  string   `json:"assigned_by_name"`

	DueDate *time.Time `json:"due_date,omitempty"`

	// ReadBy tracks which assignees have seen the reminder. HasUpdate is a
	// single flag telling the assigner an assignee changed something.
	ReadBy    []string `json:"read_by"`
	HasUpdate bool     `json:"has_update"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReminderRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2048"`
	Priority    Priority   `json:"priority"`
	AssignedTo  []string   `json:"assigned_to" binding:"required,min=1"`
	DueDate     *time.Time `json:"due_date"`
}
