package domain

import "time"

// Activity types recorded in the per-project feed.
const (
	ActivityProjectCreated = "project_created"
	ActivityProjectUpdated = "project_updated"
	ActivityTaskCreated    = "task_created"
	ActivityTaskUpdated    = "task_updated"
	ActivityTaskDeleted    = "task_deleted"
)

// Activity is a single entry in a project's activity feed.
type Activity struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	TaskID    string    `json:"task_id,omitempty"`
	ActorID   string    `json:"actor_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
