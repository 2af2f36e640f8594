package models

import "time"

// Advert is a promotional banner shown inside the student/parent apps.
type Advert struct {
	ID        string     `json:"id"`
	SchoolID  string     `json:"school_id"`
	Title     string     `json:"title"`
	Body      *string    `json:"body,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
