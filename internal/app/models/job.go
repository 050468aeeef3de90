package models

import "time"

// Job types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
)

// Job is a posted job listing.
type Job struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Company         string    `json:"company" db:"company"`
	Location        string    `json:"location" db:"location"`
	Description     string    `json:"description" db:"description"`
	Requirements    []string  `json:"requirements" db:"requirements"`
	SkillTags       []string  `json:"skillTags" db:"skill_tags"`
	SalaryRange     *string   `json:"salaryRange,omitempty" db:"salary_range"`
	ExperienceLevel string    `json:"experienceLevel" db:"experience_level"`
	JobType         string    `json:"jobType" db:"job_type"`
	PostedAt        time.Time `json:"postedAt" db:"posted_at"`
}
