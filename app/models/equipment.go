package models

import "time"

// Equipment is a tracked asset (projector, whiteboard, PC...).
type Equipment struct {
	ID        string     `json:"id"`
	SchoolID  string     `json:"school_id"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	RoomID    *string    `json:"room_id,omitempty"`
	Condition string     `json:"condition"`
	BoughtAt  *time.Time `json:"bought_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Room      *Room      `json:"room,omitempty"`
}
