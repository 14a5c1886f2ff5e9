package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the three allowed priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task belongs to exactly one company. A nil Date means the task sits in the
// backlog rather than on any calendar day.
type Task struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Priority     Priority      `json:"priority"`
	Date         *Date         `json:"date"`
	Completed    bool          `json:"completed"`
	CompanyID    string        `json:"company_id"`
	Company      *Company      `json:"company,omitempty"`
	Observations []Observation `json:"observations"`
	CreatedAt    time.Time     `json:"created_at"`
}

// TaskFilter defines the available parameters for filtering tasks.
// All set filters combine with AND.
type TaskFilter struct {
	CompanyID *string
	Priority  *Priority
	Completed *bool
	Date      *Date
}

// TaskPatch carries a merge-style partial update. DateSet distinguishes
// "clear the date" from "leave the date alone".
type TaskPatch struct {
	Name        *string
	Description *string
	Priority    *Priority
	Date        *Date
	DateSet     bool
	Completed   *bool
}
