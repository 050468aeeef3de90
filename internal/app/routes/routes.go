package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/controllers"
)

// SetupRouter registers the full /api surface on the given engine.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	assessmentController *controllers.AssessmentController,
	catalogController *controllers.CatalogController,
	roadmapController *controllers.RoadmapController,
	jobController *controllers.JobController,
	mentorController *controllers.MentorController,
	communityController *controllers.CommunityController,
) {
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := api.Group("/users")
		{
			users.POST("", userController.CreateUser)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
		}

		skillCategories := api.Group("/skill-categories")
		{
			skillCategories.GET("", catalogController.GetSkillCategories)
			skillCategories.GET("/:id/skills", catalogController.GetSkillsByCategory)
		}

		assessments := api.Group("/assessments")
		{
			assessments.POST("", assessmentController.CreateAssessment)
			assessments.GET("/:userId", assessmentController.GetUserAssessment)
			assessments.PUT("/:userId", assessmentController.UpdateAssessment)
		}

		roadmaps := api.Group("/roadmaps")
		{
			roadmaps.GET("", roadmapController.GetRoadmaps)
			roadmaps.GET("/:id", roadmapController.GetRoadmap)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobController.GetJobs)
			jobs.GET("/:id", jobController.GetJob)
		}

		mentors := api.Group("/mentors")
		{
			mentors.GET("", mentorController.GetMentors)
			mentors.GET("/:id", mentorController.GetMentor)
		}

		mentorRequests := api.Group("/mentor-requests")
		{
			mentorRequests.POST("", mentorController.CreateMentorRequest)
			mentorRequests.GET("/:userId", mentorController.GetMentorRequests)
		}

		communityGroups := api.Group("/community-groups")
		{
			communityGroups.GET("", communityController.GetCommunityGroups)
			communityGroups.POST("", communityController.CreateCommunityGroup)
			communityGroups.GET("/:id", communityController.GetCommunityGroup)
			communityGroups.POST("/:id/join", communityController.JoinCommunityGroup)
		}
	}
}
