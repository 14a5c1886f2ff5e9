package models

import "time"

// Observation is a free-text note on a task. Observations are deleted
// together with their task.
type Observation struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	TaskID    string    `json:"task_id"`
	CreatedAt time.Time `json:"created_at"`
}
