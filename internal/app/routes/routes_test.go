package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/controllers"
	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/app/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage()

	userService := services.NewUserService(store)
	assessmentService := services.NewAssessmentService(store)
	catalogService := services.NewCatalogService(store)
	jobService := services.NewJobService(store)
	mentorService := services.NewMentorService(store)
	communityService := services.NewCommunityService(store)

	router := gin.New()
	SetupRouter(router,
		controllers.NewUserController(userService),
		controllers.NewAssessmentController(assessmentService),
		controllers.NewCatalogController(catalogService),
		controllers.NewRoadmapController(catalogService),
		controllers.NewJobController(jobService),
		controllers.NewMentorController(mentorService),
		controllers.NewCommunityController(communityService),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
}

func TestListSkillCategories(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/skill-categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var categories []models.SkillCategory
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) != 8 {
		t.Fatalf("got %d categories, want 8", len(categories))
	}
	for i := 1; i < len(categories); i++ {
		if categories[i].ID < categories[i-1].ID {
			t.Fatalf("categories not ordered by id")
		}
	}
}

func TestGetAssessmentAbsentReturnsNull(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/assessments/42", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "null" {
		t.Fatalf("body: got %q, want null", body)
	}
}

func TestAssessmentCreateThenUpdate(t *testing.T) {
	router := newTestRouter()

	create := `{
		"userId": 42,
		"course": "B.Tech CSE",
		"year": 3,
		"skillCategoryIds": [1, 7],
		"experienceLevel": "beginner",
		"careerGoals": "Move into machine learning",
		"timeCommitment": "10 hours/week"
	}`
	w := doRequest(router, http.MethodPost, "/api/assessments", create)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want 201, body %s", w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodPut, "/api/assessments/42", `{"experienceLevel": "intermediate"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status: got %d, want 200, body %s", w.Code, w.Body.String())
	}

	var assessment models.UserAssessment
	if err := json.Unmarshal(w.Body.Bytes(), &assessment); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if assessment.ExperienceLevel != models.ExperienceIntermediate {
		t.Fatalf("experience level: got %q", assessment.ExperienceLevel)
	}
	if assessment.CareerGoals != "Move into machine learning" {
		t.Fatalf("untouched field changed: %q", assessment.CareerGoals)
	}
}

func TestAssessmentUpdateWithoutExistingReturns404(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodPut, "/api/assessments/42", `{"experienceLevel": "advanced"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestAssessmentValidationFailure(t *testing.T) {
	router := newTestRouter()

	// Missing required fields and an enum violation.
	w := doRequest(router, http.MethodPost, "/api/assessments", `{"userId": 42, "experienceLevel": "guru"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" || len(resp.Errors) == 0 {
		t.Fatalf("expected field-level error list, got %s", w.Body.String())
	}
}

func TestCreateUserConflict(t *testing.T) {
	router := newTestRouter()

	body := `{
		"username": "asha",
		"email": "asha@geu.ac.in",
		"password": "secret123",
		"fullName": "Asha Verma"
	}`
	w := doRequest(router, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want 201, body %s", w.Code, w.Body.String())
	}

	var user map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in response")
	}

	w = doRequest(router, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status: got %d, want 409", w.Code)
	}
}

func TestRoadmapFilterAndNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/roadmaps?skillCategories=7,3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var roadmaps []models.Roadmap
	if err := json.Unmarshal(w.Body.Bytes(), &roadmaps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(roadmaps) == 0 {
		t.Fatalf("expected roadmaps overlapping categories 7 and 3")
	}
	for _, r := range roadmaps {
		overlap := false
		for _, id := range r.SkillCategoryIDs {
			if id == 7 || id == 3 {
				overlap = true
				break
			}
		}
		if !overlap {
			t.Fatalf("roadmap %d has no overlap with query", r.ID)
		}
	}

	w = doRequest(router, http.MethodGet, "/api/roadmaps?skillCategories=7,x", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed filter status: got %d, want 400", w.Code)
	}

	w = doRequest(router, http.MethodGet, "/api/roadmaps/9999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing roadmap status: got %d, want 404", w.Code)
	}
}

func TestJobSearchThroughBoundary(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/jobs?search=react", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var jobs []models.Job
	if err := json.Unmarshal(w.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Junior Web Developer" {
		t.Fatalf("search=react: got %+v", jobs)
	}
}

func TestJoinCommunityGroupThroughBoundary(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodPost, "/api/community-groups/1/join", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var group models.CommunityGroup
	if err := json.Unmarshal(w.Body.Bytes(), &group); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if group.MemberCount != 249 {
		t.Fatalf("member count: got %d, want 249", group.MemberCount)
	}

	w = doRequest(router, http.MethodPost, "/api/community-groups/9999/join", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing group status: got %d, want 404", w.Code)
	}
}

func TestCreateMentorRequestThroughBoundary(t *testing.T) {
	router := newTestRouter()

	body := `{"userId": 1, "mentorId": 2, "message": "Portfolio review please", "status": "accepted"}`
	w := doRequest(router, http.MethodPost, "/api/mentor-requests", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body %s", w.Code, w.Body.String())
	}
	var request models.MentorRequest
	if err := json.Unmarshal(w.Body.Bytes(), &request); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if request.Status != models.RequestPending {
		t.Fatalf("status forced: got %q, want pending", request.Status)
	}
}
