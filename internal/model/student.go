package model

import "time"

// Student represents an authenticated student principal.
type Student struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	TrackID      string     `json:"track_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoginRequest is the payload for student authentication.
// Both fields are required; a missing field is a validation error,
// not an invalid-credentials one.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=40"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}
