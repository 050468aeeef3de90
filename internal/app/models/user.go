package models

import "time"

// User represents a registered student
type User struct {
	ID              int64     `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	Email           string    `json:"email" db:"email"`
	Password        string    `json:"-" db:"password"`
	FullName        string    `json:"fullName" db:"full_name"`
	Course          string    `json:"course" db:"course"`
	Year            int       `json:"year" db:"year"`
	ProfileComplete bool      `json:"profileComplete" db:"profile_complete"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// UserPatch carries the fields of a partial user update. Nil fields are
// left untouched by the merge.
type UserPatch struct {
	FullName        *string
	Course          *string
	Year            *int
	ProfileComplete *bool
}
