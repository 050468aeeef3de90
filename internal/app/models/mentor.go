package models

import "time"

// Mentor request statuses
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Mentor is an industry professional available for mentoring. Rating is
// stored as an integer of one-tenth stars (48 means 4.8); only mentors
// with Available=true are listed.
type Mentor struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Title           string   `json:"title" db:"title"`
	Company         string   `json:"company" db:"company"`
	Experience      int      `json:"experience" db:"experience"`
	Specializations []string `json:"specializations" db:"specializations"`
	Bio             string   `json:"bio" db:"bio"`
	ProfileImage    *string  `json:"profileImage,omitempty" db:"profile_image"`
	Rating          int      `json:"rating" db:"rating"`
	TotalReviews    int      `json:"totalReviews" db:"total_reviews"`
	MenteesCount    int      `json:"menteesCount" db:"mentees_count"`
	Available       bool     `json:"available" db:"available"`
}

// MentorRequest is a user-initiated ask to be mentored. Requests are
// created in the pending state; no endpoint mutates the status.
type MentorRequest struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	MentorID  int64     `json:"mentorId" db:"mentor_id"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
