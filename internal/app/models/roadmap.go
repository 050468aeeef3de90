package models

// Roadmap step display statuses
const (
	StepCompleted = "completed"
	StepCurrent   = "current"
	StepUpcoming  = "upcoming"
)

// Roadmap difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// RoadmapStep is one ordered stage of a career roadmap.
type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
}

// Roadmap is a curated career path. Step order is significant and preserved
// as stored. Roadmaps are reference data; no write path is exposed.
type Roadmap struct {
	ID                int64         `json:"id" db:"id"`
	Title             string        `json:"title" db:"title"`
	Description       string        `json:"description" db:"description"`
	SkillCategoryIDs  []int64       `json:"skillCategoryIds" db:"skill_category_ids"`
	Steps             []RoadmapStep `json:"steps" db:"steps"`
	EstimatedDuration string        `json:"estimatedDuration" db:"estimated_duration"`
	SalaryRange       string        `json:"salaryRange" db:"salary_range"`
	Difficulty        string        `json:"difficulty" db:"difficulty"`
}
