package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

func TestCreateUserUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	first, err := store.CreateUser(ctx, &models.User{
		Username: "asha", Email: "asha@geu.ac.in", Password: "hash", FullName: "Asha Verma",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if first.ProfileComplete {
		t.Fatalf("profileComplete must start false")
	}

	if _, err := store.CreateUser(ctx, &models.User{
		Username: "asha", Email: "other@geu.ac.in", Password: "hash", FullName: "Other",
	}); err != apperrors.ErrUsernameAlreadyExists {
		t.Fatalf("duplicate username: got %v, want ErrUsernameAlreadyExists", err)
	}

	if _, err := store.CreateUser(ctx, &models.User{
		Username: "someone", Email: "asha@geu.ac.in", Password: "hash", FullName: "Someone",
	}); err != apperrors.ErrEmailAlreadyExists {
		t.Fatalf("duplicate email: got %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUpdateUserPartialMerge(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	user, err := store.CreateUser(ctx, &models.User{
		Username: "ravi", Email: "ravi@geu.ac.in", Password: "hash", FullName: "Ravi Singh", Course: "B.Tech CSE", Year: 2,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	done := true
	updated, err := store.UpdateUser(ctx, user.ID, models.UserPatch{ProfileComplete: &done})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if !updated.ProfileComplete {
		t.Fatalf("profileComplete not applied")
	}
	if updated.Course != "B.Tech CSE" || updated.Year != 2 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	missing, err := store.UpdateUser(ctx, 9999, models.UserPatch{ProfileComplete: &done})
	if err != nil || missing != nil {
		t.Fatalf("update of unknown user: got (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	// Update before create must report absence, never create.
	course := "BBA"
	if a, err := store.UpdateUserAssessment(ctx, 7, models.AssessmentPatch{Course: &course}); err != nil || a != nil {
		t.Fatalf("update without assessment: got (%v, %v), want (nil, nil)", a, err)
	}

	created, err := store.CreateUserAssessment(ctx, 7, &models.UserAssessment{
		Course:           "B.Tech CSE",
		Year:             3,
		SkillCategoryIDs: []int64{1, 7},
		ExperienceLevel:  models.ExperienceBeginner,
		CareerGoals:      "Switch to data science",
		TimeCommitment:   "10 hours/week",
	})
	if err != nil {
		t.Fatalf("create assessment: %v", err)
	}
	if created.UserID != 7 {
		t.Fatalf("userId not assigned: %+v", created)
	}

	level := models.ExperienceIntermediate
	updated, err := store.UpdateUserAssessment(ctx, 7, models.AssessmentPatch{ExperienceLevel: &level})
	if err != nil {
		t.Fatalf("update assessment: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update created a new assessment: %d != %d", updated.ID, created.ID)
	}
	if updated.ExperienceLevel != models.ExperienceIntermediate {
		t.Fatalf("experience level not merged")
	}
	if updated.CareerGoals != "Switch to data science" {
		t.Fatalf("untouched field changed")
	}

	// Still exactly one assessment for the user.
	got, err := store.GetUserAssessment(ctx, 7)
	if err != nil {
		t.Fatalf("get assessment: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("expected the single merged assessment, got %+v", got)
	}
}

func TestJobFilterConjunction(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	cases := []struct {
		name    string
		filters JobFilters
		wantIDs []int64
	}{
		{"search matches skill tag", JobFilters{Search: "react"}, []int64{1}},
		{"experience level exact", JobFilters{ExperienceLevel: "Entry Level"}, []int64{1, 2}},
		{"search and job type combined", JobFilters{Search: "analyst", JobType: models.JobTypeInternship}, []int64{2}},
		{"location substring", JobFilters{Location: "dehradun"}, []int64{1, 3, 2}},
		{"conjunction excludes all", JobFilters{Search: "react", JobType: models.JobTypeInternship}, []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := store.GetJobs(ctx, tc.filters)
			if err != nil {
				t.Fatalf("get jobs: %v", err)
			}
			if len(jobs) != len(tc.wantIDs) {
				t.Fatalf("got %d jobs, want %d", len(jobs), len(tc.wantIDs))
			}
			seen := make(map[int64]bool)
			for _, j := range jobs {
				seen[j.ID] = true
			}
			for _, id := range tc.wantIDs {
				if !seen[id] {
					t.Fatalf("job %d missing from result", id)
				}
			}
		})
	}
}

func TestJobOrderingNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	jobs, err := store.GetJobs(ctx, JobFilters{})
	if err != nil {
		t.Fatalf("get jobs: %v", err)
	}
	if len(jobs) < 2 {
		t.Fatalf("expected seeded jobs")
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].PostedAt.After(jobs[i-1].PostedAt) {
			t.Fatalf("jobs out of order at %d: %v after %v", i, jobs[i].PostedAt, jobs[i-1].PostedAt)
		}
	}
	// Seeded postings are 2, 7 and 3 days old.
	if jobs[0].ID != 1 || jobs[1].ID != 3 || jobs[2].ID != 2 {
		t.Fatalf("unexpected order: %d, %d, %d", jobs[0].ID, jobs[1].ID, jobs[2].ID)
	}
}

func TestMentorAvailabilityGate(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	store.mu.Lock()
	store.mentors[99] = models.Mentor{
		ID: 99, Name: "Gone Mentor", Specializations: []string{"React"}, Available: false,
	}
	store.mu.Unlock()

	for _, filters := range []MentorFilters{{}, {Specialization: "react"}} {
		mentors, err := store.GetMentors(ctx, filters)
		if err != nil {
			t.Fatalf("get mentors: %v", err)
		}
		for _, m := range mentors {
			if m.ID == 99 {
				t.Fatalf("unavailable mentor listed with filters %+v", filters)
			}
			if !m.Available {
				t.Fatalf("unavailable mentor %d in result", m.ID)
			}
		}
	}

	mentors, err := store.GetMentors(ctx, MentorFilters{Specialization: "figma"})
	if err != nil {
		t.Fatalf("get mentors: %v", err)
	}
	if len(mentors) != 1 || mentors[0].ID != 2 {
		t.Fatalf("specialization filter: got %+v, want mentor 2", mentors)
	}
}

func TestRoadmapIntersection(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	store.mu.Lock()
	store.roadmaps[50] = models.Roadmap{ID: 50, Title: "Hybrid Track", SkillCategoryIDs: []int64{7, 3}}
	store.mu.Unlock()

	contains := func(roadmaps []models.Roadmap, id int64) bool {
		for _, r := range roadmaps {
			if r.ID == id {
				return true
			}
		}
		return false
	}

	for _, ids := range [][]int64{{3}, {7, 9}} {
		roadmaps, err := store.GetRoadmapsBySkillCategories(ctx, ids)
		if err != nil {
			t.Fatalf("get roadmaps by %v: %v", ids, err)
		}
		if !contains(roadmaps, 50) {
			t.Fatalf("roadmap [7,3] not returned for query %v", ids)
		}
	}

	roadmaps, err := store.GetRoadmapsBySkillCategories(ctx, []int64{5})
	if err != nil {
		t.Fatalf("get roadmaps by [5]: %v", err)
	}
	if contains(roadmaps, 50) {
		t.Fatalf("roadmap [7,3] wrongly returned for query [5]")
	}
}

func TestJoinCommunityGroupMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	// Seeded group 1 starts at 248 members.
	for _, want := range []int{249, 250, 251} {
		group, err := store.JoinCommunityGroup(ctx, 1)
		if err != nil {
			t.Fatalf("join: %v", err)
		}
		if group.MemberCount != want {
			t.Fatalf("member count: got %d, want %d", group.MemberCount, want)
		}
	}
}

func TestJoinCommunityGroupConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	before, err := store.GetCommunityGroup(ctx, 1)
	if err != nil || before == nil {
		t.Fatalf("get group: (%v, %v)", before, err)
	}

	const joins = 64
	var wg sync.WaitGroup
	wg.Add(joins)
	for i := 0; i < joins; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.JoinCommunityGroup(ctx, 1); err != nil {
				t.Errorf("join: %v", err)
			}
		}()
	}
	wg.Wait()

	after, err := store.GetCommunityGroup(ctx, 1)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if after.MemberCount != before.MemberCount+joins {
		t.Fatalf("lost updates: got %d, want %d", after.MemberCount, before.MemberCount+joins)
	}
}

func TestCreateCommunityGroupForcesZeroMembers(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	group, err := store.CreateCommunityGroup(ctx, &models.CommunityGroup{
		Name:        "Open Source Club",
		Description: "Contributing to open source together",
		Category:    "Technology",
		Icon:        "fas fa-code-branch",
		MemberCount: 5000,
		Active:      true,
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if group.MemberCount != 0 {
		t.Fatalf("member count: got %d, want 0", group.MemberCount)
	}
	if group.ID <= 3 {
		t.Fatalf("id collides with seeded groups: %d", group.ID)
	}
}

func TestCreateMentorRequestForcesPending(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	request, err := store.CreateMentorRequest(ctx, 7, &models.MentorRequest{
		MentorID: 1,
		Message:  "Please help me switch to frontend development",
		Status:   models.RequestAccepted,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if request.Status != models.RequestPending {
		t.Fatalf("status: got %q, want %q", request.Status, models.RequestPending)
	}

	requests, err := store.GetMentorRequests(ctx, 7)
	if err != nil {
		t.Fatalf("get requests: %v", err)
	}
	if len(requests) != 1 || requests[0].ID != request.ID {
		t.Fatalf("request not listed for user: %+v", requests)
	}
}

func TestInactiveGroupsHiddenFromList(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	store.mu.Lock()
	store.communityGroups[60] = models.CommunityGroup{ID: 60, Name: "Archived", Active: false}
	store.mu.Unlock()

	groups, err := store.GetCommunityGroups(ctx)
	if err != nil {
		t.Fatalf("get groups: %v", err)
	}
	for _, g := range groups {
		if g.ID == 60 {
			t.Fatalf("inactive group listed")
		}
	}

	// Direct lookup still finds it.
	g, err := store.GetCommunityGroup(ctx, 60)
	if err != nil || g == nil {
		t.Fatalf("get inactive group: (%v, %v)", g, err)
	}
}

func TestLoadFixturesIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	if _, err := store.JoinCommunityGroup(ctx, 1); err != nil {
		t.Fatalf("join: %v", err)
	}

	categories, _ := store.GetSkillCategories(ctx)
	roadmaps, _ := store.GetRoadmaps(ctx)
	jobs, _ := store.GetJobs(ctx, JobFilters{})

	store.LoadFixtures()

	categoriesAfter, _ := store.GetSkillCategories(ctx)
	roadmapsAfter, _ := store.GetRoadmaps(ctx)
	jobsAfter, _ := store.GetJobs(ctx, JobFilters{})

	if len(categoriesAfter) != len(categories) || len(roadmapsAfter) != len(roadmaps) || len(jobsAfter) != len(jobs) {
		t.Fatalf("reseed changed entity counts")
	}

	// The bumped member count survives a reseed.
	group, err := store.GetCommunityGroup(ctx, 1)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if group.MemberCount != 249 {
		t.Fatalf("reseed overwrote member count: got %d, want 249", group.MemberCount)
	}
}

func TestNotFoundConsistency(t *testing.T) {
	ctx := context.Background()
	store := NewMemStorage()

	if r, err := store.GetRoadmap(ctx, 9999); err != nil || r != nil {
		t.Fatalf("roadmap 9999: got (%v, %v), want (nil, nil)", r, err)
	}
	if j, err := store.GetJob(ctx, 9999); err != nil || j != nil {
		t.Fatalf("job 9999: got (%v, %v), want (nil, nil)", j, err)
	}
	if m, err := store.GetMentor(ctx, 9999); err != nil || m != nil {
		t.Fatalf("mentor 9999: got (%v, %v), want (nil, nil)", m, err)
	}
	if g, err := store.GetCommunityGroup(ctx, 9999); err != nil || g != nil {
		t.Fatalf("group 9999: got (%v, %v), want (nil, nil)", g, err)
	}
	if g, err := store.JoinCommunityGroup(ctx, 9999); err != nil || g != nil {
		t.Fatalf("join 9999: got (%v, %v), want (nil, nil)", g, err)
	}
}
