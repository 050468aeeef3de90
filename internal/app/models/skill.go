package models

// SkillCategory is a coarse grouping used to tag roadmaps and assessment
// interests. The seeded set is fixed reference data.
type SkillCategory struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"`
}

// Skill belongs to exactly one skill category.
type Skill struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	CategoryID  int64   `json:"categoryId" db:"category_id"`
	Description *string `json:"description,omitempty" db:"description"`
}
