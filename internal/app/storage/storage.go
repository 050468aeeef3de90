package storage

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
)

// JobFilters narrows GetJobs results. All fields are optional and combined
// with AND. Search matches case-insensitively against title, company,
// description and any skill tag; Location is a case-insensitive substring
// match; ExperienceLevel and JobType match exactly.
type JobFilters struct {
	Search          string
	ExperienceLevel string
	JobType         string
	Location        string
}

// MentorFilters narrows GetMentors results. Specialization matches
// case-insensitively against any entry of a mentor's specializations.
// Unavailable mentors are always excluded, filters or not.
type MentorFilters struct {
	Specialization string
}

// Storage is the single contract through which every other component reads
// and writes persisted entities. Lookups that find nothing return (nil, nil):
// absence is a normal outcome, not an error. Implementations must be safe
// for concurrent use; JoinCommunityGroup must increment atomically so that
// concurrent joins of the same group never lose updates.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser assigns the id and created-at timestamp and forces
	// ProfileComplete to false. Returns apperrors.ErrUsernameAlreadyExists
	// or apperrors.ErrEmailAlreadyExists on a uniqueness violation.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)

	// Skill categories and skills
	GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error)
	GetSkillsByCategory(ctx context.Context, categoryID int64) ([]models.Skill, error)

	// User assessments
	GetUserAssessment(ctx context.Context, userID int64) (*models.UserAssessment, error)
	CreateUserAssessment(ctx context.Context, userID int64, assessment *models.UserAssessment) (*models.UserAssessment, error)
	UpdateUserAssessment(ctx context.Context, userID int64, patch models.AssessmentPatch) (*models.UserAssessment, error)

	// Roadmaps
	GetRoadmaps(ctx context.Context) ([]models.Roadmap, error)
	// GetRoadmapsBySkillCategories returns roadmaps whose skillCategoryIds
	// share at least one id with categoryIDs (intersection, not subset).
	GetRoadmapsBySkillCategories(ctx context.Context, categoryIDs []int64) ([]models.Roadmap, error)
	GetRoadmap(ctx context.Context, id int64) (*models.Roadmap, error)

	// Jobs, sorted by postedAt descending
	GetJobs(ctx context.Context, filters JobFilters) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)

	// Mentors
	GetMentors(ctx context.Context, filters MentorFilters) ([]models.Mentor, error)
	GetMentor(ctx context.Context, id int64) (*models.Mentor, error)
	// CreateMentorRequest forces the status to pending regardless of input.
	CreateMentorRequest(ctx context.Context, userID int64, request *models.MentorRequest) (*models.MentorRequest, error)
	GetMentorRequests(ctx context.Context, userID int64) ([]models.MentorRequest, error)

	// Community groups. GetCommunityGroups lists active groups only;
	// GetCommunityGroup returns the group whether active or not.
	GetCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error)
	GetCommunityGroup(ctx context.Context, id int64) (*models.CommunityGroup, error)
	// CreateCommunityGroup forces MemberCount to zero regardless of input.
	CreateCommunityGroup(ctx context.Context, group *models.CommunityGroup) (*models.CommunityGroup, error)
	// JoinCommunityGroup atomically increments the member count by one and
	// returns the updated group, or (nil, nil) if the group is unknown.
	JoinCommunityGroup(ctx context.Context, groupID int64) (*models.CommunityGroup, error)
}
