package models

import "time"

// ActivityLog records one administrative action for the audit screen.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *string   `json:"entity_id,omitempty"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
