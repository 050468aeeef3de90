package dto

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Course   string `json:"course"`
	Year     int    `json:"year" binding:"omitempty,min=1,max=4"`
}

// UpdateUserRequest is the body of PUT /api/users/{id}. Nil fields are left
// untouched.
type UpdateUserRequest struct {
	FullName        *string `json:"fullName"`
	Course          *string `json:"course"`
	Year            *int    `json:"year" binding:"omitempty,min=1,max=4"`
	ProfileComplete *bool   `json:"profileComplete"`
}

// CreateAssessmentRequest is the body of POST /api/assessments.
type CreateAssessmentRequest struct {
	UserID           int64   `json:"userId" binding:"required,min=1"`
	Course           string  `json:"course" binding:"required"`
	Year             int     `json:"year" binding:"required,min=1,max=4"`
	SkillCategoryIDs []int64 `json:"skillCategoryIds" binding:"required,min=1"`
	ExperienceLevel  string  `json:"experienceLevel" binding:"required,oneof=beginner intermediate advanced"`
	CareerGoals      string  `json:"careerGoals" binding:"required"`
	TimeCommitment   string  `json:"timeCommitment" binding:"required"`
	Completed        bool    `json:"completed"`
}

// UpdateAssessmentRequest is the body of PUT /api/assessments/{userId}.
// Nil fields are left untouched; a nil skillCategoryIds means unchanged.
type UpdateAssessmentRequest struct {
	Course           *string `json:"course"`
	Year             *int    `json:"year" binding:"omitempty,min=1,max=4"`
	SkillCategoryIDs []int64 `json:"skillCategoryIds"`
	ExperienceLevel  *string `json:"experienceLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	CareerGoals      *string `json:"careerGoals"`
	TimeCommitment   *string `json:"timeCommitment"`
	Completed        *bool   `json:"completed"`
}

// CreateMentorRequestRequest is the body of POST /api/mentor-requests.
// Any status in the body is ignored; requests always start pending.
type CreateMentorRequestRequest struct {
	UserID   int64  `json:"userId" binding:"required,min=1"`
	MentorID int64  `json:"mentorId" binding:"required,min=1"`
	Message  string `json:"message" binding:"required"`
}

// CreateCommunityGroupRequest is the body of POST /api/community-groups.
// Any memberCount in the body is ignored; groups always start at zero.
type CreateCommunityGroupRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Icon         string  `json:"icon" binding:"required"`
	WhatsappLink *string `json:"whatsappLink"`
	Active       *bool   `json:"active"`
}
