package models

import "time"

// Experience levels accepted on assessments
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// UserAssessment captures a student's skill-assessment intake. A user has
// at most one assessment; updates merge into the existing record.
type UserAssessment struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"userId" db:"user_id"`
	Course           string    `json:"course" db:"course"`
	Year             int       `json:"year" db:"year"`
	SkillCategoryIDs []int64   `json:"skillCategoryIds" db:"skill_category_ids"`
	ExperienceLevel  string    `json:"experienceLevel" db:"experience_level"`
	CareerGoals      string    `json:"careerGoals" db:"career_goals"`
	TimeCommitment   string    `json:"timeCommitment" db:"time_commitment"`
	Completed        bool      `json:"completed" db:"completed"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// AssessmentPatch carries the fields of a partial assessment update.
// Nil fields are left untouched; a nil SkillCategoryIDs slice means
// "unchanged", an empty one clears the selection.
type AssessmentPatch struct {
	Course           *string
	Year             *int
	SkillCategoryIDs []int64
	ExperienceLevel  *string
	CareerGoals      *string
	TimeCommitment   *string
	Completed        *bool
}
