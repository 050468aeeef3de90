package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
	"github.com/skillsynergy/api/internal/seed"
)

// MemStorage keeps every entity family in a keyed map behind one mutex.
// It is the development and test double for PostgresStorage and satisfies
// the same contract, including uniqueness on username/email and atomic
// member-count increments.
type MemStorage struct {
	mu sync.RWMutex

	users           map[int64]models.User
	skillCategories map[int64]models.SkillCategory
	skills          map[int64]models.Skill
	assessments     map[int64]models.UserAssessment
	roadmaps        map[int64]models.Roadmap
	jobs            map[int64]models.Job
	mentors         map[int64]models.Mentor
	mentorRequests  map[int64]models.MentorRequest
	communityGroups map[int64]models.CommunityGroup

	nextUserID       int64
	nextAssessmentID int64
	nextRequestID    int64
	nextGroupID      int64
}

// NewMemStorage constructs a store preloaded with the seed fixtures.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:           make(map[int64]models.User),
		skillCategories: make(map[int64]models.SkillCategory),
		skills:          make(map[int64]models.Skill),
		assessments:     make(map[int64]models.UserAssessment),
		roadmaps:        make(map[int64]models.Roadmap),
		jobs:            make(map[int64]models.Job),
		mentors:         make(map[int64]models.Mentor),
		mentorRequests:  make(map[int64]models.MentorRequest),
		communityGroups: make(map[int64]models.CommunityGroup),

		nextUserID:       1,
		nextAssessmentID: 1,
		nextRequestID:    1,
		nextGroupID:      1,
	}
	s.LoadFixtures()
	return s
}

// LoadFixtures inserts the seed reference data, skipping any id already
// present. Calling it again on a populated store changes nothing.
func (s *MemStorage) LoadFixtures() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range seed.SkillCategories() {
		if _, ok := s.skillCategories[c.ID]; !ok {
			s.skillCategories[c.ID] = c
		}
	}
	for _, sk := range seed.Skills() {
		if _, ok := s.skills[sk.ID]; !ok {
			s.skills[sk.ID] = sk
		}
	}
	for _, r := range seed.Roadmaps() {
		if _, ok := s.roadmaps[r.ID]; !ok {
			s.roadmaps[r.ID] = r
		}
	}
	for _, j := range seed.Jobs() {
		if _, ok := s.jobs[j.ID]; !ok {
			s.jobs[j.ID] = j
		}
	}
	for _, m := range seed.Mentors() {
		if _, ok := s.mentors[m.ID]; !ok {
			s.mentors[m.ID] = m
		}
	}
	for _, g := range seed.CommunityGroups() {
		if _, ok := s.communityGroups[g.ID]; !ok {
			s.communityGroups[g.ID] = g
		}
		if g.ID >= s.nextGroupID {
			s.nextGroupID = g.ID + 1
		}
	}
}

// Users

func (s *MemStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	created := *user
	created.ID = s.nextUserID
	created.ProfileComplete = false
	created.CreatedAt = time.Now()
	s.nextUserID++

	s.users[created.ID] = created
	return &created, nil
}

func (s *MemStorage) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Course != nil {
		user.Course = *patch.Course
	}
	if patch.Year != nil {
		user.Year = *patch.Year
	}
	if patch.ProfileComplete != nil {
		user.ProfileComplete = *patch.ProfileComplete
	}

	s.users[id] = user
	return &user, nil
}

// Skill categories and skills

func (s *MemStorage) GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.SkillCategory, 0, len(s.skillCategories))
	for _, c := range s.skillCategories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemStorage) GetSkillsByCategory(ctx context.Context, categoryID int64) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skills := make([]models.Skill, 0)
	for _, sk := range s.skills {
		if sk.CategoryID == categoryID {
			skills = append(skills, sk)
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })
	return skills, nil
}

// User assessments

func (s *MemStorage) GetUserAssessment(ctx context.Context, userID int64) (*models.UserAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assessments {
		if a.UserID == userID {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUserAssessment(ctx context.Context, userID int64, assessment *models.UserAssessment) (*models.UserAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *assessment
	created.ID = s.nextAssessmentID
	created.UserID = userID
	created.CreatedAt = time.Now()
	s.nextAssessmentID++

	s.assessments[created.ID] = created
	return &created, nil
}

func (s *MemStorage) UpdateUserAssessment(ctx context.Context, userID int64, patch models.AssessmentPatch) (*models.UserAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.assessments {
		if a.UserID != userID {
			continue
		}

		if patch.Course != nil {
			a.Course = *patch.Course
		}
		if patch.Year != nil {
			a.Year = *patch.Year
		}
		if patch.SkillCategoryIDs != nil {
			a.SkillCategoryIDs = patch.SkillCategoryIDs
		}
		if patch.ExperienceLevel != nil {
			a.ExperienceLevel = *patch.ExperienceLevel
		}
		if patch.CareerGoals != nil {
			a.CareerGoals = *patch.CareerGoals
		}
		if patch.TimeCommitment != nil {
			a.TimeCommitment = *patch.TimeCommitment
		}
		if patch.Completed != nil {
			a.Completed = *patch.Completed
		}

		s.assessments[id] = a
		return &a, nil
	}
	return nil, nil
}

// Roadmaps

func (s *MemStorage) GetRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roadmaps := make([]models.Roadmap, 0, len(s.roadmaps))
	for _, r := range s.roadmaps {
		roadmaps = append(roadmaps, r)
	}
	sort.Slice(roadmaps, func(i, j int) bool { return roadmaps[i].ID < roadmaps[j].ID })
	return roadmaps, nil
}

func (s *MemStorage) GetRoadmapsBySkillCategories(ctx context.Context, categoryIDs []int64) ([]models.Roadmap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = struct{}{}
	}

	roadmaps := make([]models.Roadmap, 0)
	for _, r := range s.roadmaps {
		for _, id := range r.SkillCategoryIDs {
			if _, ok := wanted[id]; ok {
				roadmaps = append(roadmaps, r)
				break
			}
		}
	}
	sort.Slice(roadmaps, func(i, j int) bool { return roadmaps[i].ID < roadmaps[j].ID })
	return roadmaps, nil
}

func (s *MemStorage) GetRoadmap(ctx context.Context, id int64) (*models.Roadmap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.roadmaps[id]; ok {
		return &r, nil
	}
	return nil, nil
}

// Jobs

func (s *MemStorage) GetJobs(ctx context.Context, filters JobFilters) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if matchJob(j, filters) {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].PostedAt.After(jobs[j].PostedAt) })
	return jobs, nil
}

// matchJob applies the conjunctive job filters.
func matchJob(job models.Job, filters JobFilters) bool {
	if filters.Search != "" {
		search := strings.ToLower(filters.Search)
		matched := strings.Contains(strings.ToLower(job.Title), search) ||
			strings.Contains(strings.ToLower(job.Company), search) ||
			strings.Contains(strings.ToLower(job.Description), search)
		if !matched {
			for _, tag := range job.SkillTags {
				if strings.Contains(strings.ToLower(tag), search) {
					matched = true
					break
				}
			}
		}
		if !matched {
			return false
		}
	}

	if filters.ExperienceLevel != "" && job.ExperienceLevel != filters.ExperienceLevel {
		return false
	}
	if filters.JobType != "" && job.JobType != filters.JobType {
		return false
	}
	if filters.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(filters.Location)) {
		return false
	}
	return true
}

func (s *MemStorage) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if j, ok := s.jobs[id]; ok {
		return &j, nil
	}
	return nil, nil
}

// Mentors

func (s *MemStorage) GetMentors(ctx context.Context, filters MentorFilters) ([]models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentors := make([]models.Mentor, 0, len(s.mentors))
	for _, m := range s.mentors {
		if !m.Available {
			continue
		}
		if filters.Specialization != "" && !matchSpecialization(m, filters.Specialization) {
			continue
		}
		mentors = append(mentors, m)
	}
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].ID < mentors[j].ID })
	return mentors, nil
}

func matchSpecialization(mentor models.Mentor, specialization string) bool {
	needle := strings.ToLower(specialization)
	for _, spec := range mentor.Specializations {
		if strings.Contains(strings.ToLower(spec), needle) {
			return true
		}
	}
	return false
}

func (s *MemStorage) GetMentor(ctx context.Context, id int64) (*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.mentors[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateMentorRequest(ctx context.Context, userID int64, request *models.MentorRequest) (*models.MentorRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *request
	created.ID = s.nextRequestID
	created.UserID = userID
	created.Status = models.RequestPending
	created.CreatedAt = time.Now()
	s.nextRequestID++

	s.mentorRequests[created.ID] = created
	return &created, nil
}

func (s *MemStorage) GetMentorRequests(ctx context.Context, userID int64) ([]models.MentorRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.MentorRequest, 0)
	for _, r := range s.mentorRequests {
		if r.UserID == userID {
			requests = append(requests, r)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

// Community groups

func (s *MemStorage) GetCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.CommunityGroup, 0, len(s.communityGroups))
	for _, g := range s.communityGroups {
		if g.Active {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *MemStorage) GetCommunityGroup(ctx context.Context, id int64) (*models.CommunityGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g, ok := s.communityGroups[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateCommunityGroup(ctx context.Context, group *models.CommunityGroup) (*models.CommunityGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *group
	created.ID = s.nextGroupID
	created.MemberCount = 0
	created.CreatedAt = time.Now()
	s.nextGroupID++

	s.communityGroups[created.ID] = created
	return &created, nil
}

func (s *MemStorage) JoinCommunityGroup(ctx context.Context, groupID int64) (*models.CommunityGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.communityGroups[groupID]
	if !ok {
		return nil, nil
	}

	group.MemberCount++
	s.communityGroups[groupID] = group
	return &group, nil
}
