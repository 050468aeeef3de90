package seed

import (
	"time"

	"github.com/skillsynergy/api/internal/app/models"
)

// Reference data shared by the Postgres seeder and the in-memory store.
// Fixture ids are stable; seeding is insert-if-absent per id.

func strPtr(s string) *string { return &s }

// SkillCategories returns the fixed set of skill categories.
func SkillCategories() []models.SkillCategory {
	return []models.SkillCategory{
		{ID: 1, Name: "Programming & Development", Description: "Web dev, mobile apps, software engineering", Icon: "fas fa-code"},
		{ID: 2, Name: "Design & Creative", Description: "UI/UX, graphic design, digital art", Icon: "fas fa-palette"},
		{ID: 3, Name: "Data & Analytics", Description: "Data science, business intelligence, research", Icon: "fas fa-chart-line"},
		{ID: 4, Name: "Marketing & Communication", Description: "Digital marketing, content creation, PR", Icon: "fas fa-bullhorn"},
		{ID: 5, Name: "Business & Finance", Description: "Finance, accounting, business strategy", Icon: "fas fa-briefcase"},
		{ID: 6, Name: "Healthcare & Life Sciences", Description: "Medical research, biotechnology, healthcare", Icon: "fas fa-heart"},
		{ID: 7, Name: "AI & Machine Learning", Description: "Artificial intelligence, deep learning, neural networks", Icon: "fas fa-robot"},
		{ID: 8, Name: "Education & Training", Description: "Teaching, course creation, mentoring", Icon: "fas fa-graduation-cap"},
	}
}

// Roadmaps returns the curated career roadmaps.
func Roadmaps() []models.Roadmap {
	return []models.Roadmap{
		{
			ID:               1,
			Title:            "Full-Stack Web Developer",
			Description:      "Comprehensive path to becoming a full-stack developer",
			SkillCategoryIDs: []int64{1},
			Steps: []models.RoadmapStep{
				{Title: "HTML, CSS, JavaScript Fundamentals", Description: "Master web basics", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "React.js Framework", Description: "Modern frontend development", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Node.js & Express.js", Description: "Backend development", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Database Management", Description: "SQL and NoSQL databases", Duration: "1 month", Status: models.StepUpcoming},
				{Title: "Deploy & DevOps", Description: "Production deployment", Duration: "1 month", Status: models.StepUpcoming},
			},
			EstimatedDuration: "6-12 months",
			SalaryRange:       "₹4-8 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
		{
			ID:               2,
			Title:            "Python Developer",
			Description:      "Backend development and automation with Python",
			SkillCategoryIDs: []int64{1},
			Steps: []models.RoadmapStep{
				{Title: "Python Fundamentals", Description: "Core programming concepts", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Django/Flask Framework", Description: "Web application development", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "API Development", Description: "REST APIs and microservices", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Database Integration", Description: "PostgreSQL, MongoDB", Duration: "1 month", Status: models.StepUpcoming},
				{Title: "Testing & Deployment", Description: "Unit testing and CI/CD", Duration: "1 month", Status: models.StepUpcoming},
			},
			EstimatedDuration: "5-9 months",
			SalaryRange:       "₹3.5-7 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
		{
			ID:               3,
			Title:            "Mobile App Developer",
			Description:      "Cross-platform mobile application development",
			SkillCategoryIDs: []int64{1},
			Steps: []models.RoadmapStep{
				{Title: "Mobile Development Fundamentals", Description: "iOS/Android basics", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "React Native/Flutter", Description: "Cross-platform framework", Duration: "3 months", Status: models.StepUpcoming},
				{Title: "API Integration", Description: "Backend connectivity", Duration: "1 month", Status: models.StepUpcoming},
				{Title: "App Store Deployment", Description: "Publishing to stores", Duration: "1 month", Status: models.StepUpcoming},
				{Title: "Performance Optimization", Description: "App optimization", Duration: "1 month", Status: models.StepUpcoming},
			},
			EstimatedDuration: "6-10 months",
			SalaryRange:       "₹4-9 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
		{
			ID:               4,
			Title:            "AI/ML Engineer",
			Description:      "Artificial Intelligence and Machine Learning specialist",
			SkillCategoryIDs: []int64{7, 3},
			Steps: []models.RoadmapStep{
				{Title: "Python & Mathematics", Description: "Programming and math foundations", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Machine Learning Basics", Description: "Algorithms and concepts", Duration: "3 months", Status: models.StepUpcoming},
				{Title: "Deep Learning", Description: "Neural networks and frameworks", Duration: "3 months", Status: models.StepUpcoming},
				{Title: "Computer Vision/NLP", Description: "Specialization areas", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "MLOps & Deployment", Description: "Production ML systems", Duration: "2 months", Status: models.StepUpcoming},
			},
			EstimatedDuration: "8-15 months",
			SalaryRange:       "₹6-15 LPA starting",
			Difficulty:        models.DifficultyHard,
		},
		{
			ID:               5,
			Title:            "Data Scientist",
			Description:      "Extract insights from data and build predictive models",
			SkillCategoryIDs: []int64{3, 7},
			Steps: []models.RoadmapStep{
				{Title: "Statistics & Mathematics", Description: "Statistical foundations", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Python for Data Science", Description: "Pandas, NumPy, Matplotlib", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Machine Learning", Description: "Supervised and unsupervised learning", Duration: "3 months", Status: models.StepUpcoming},
				{Title: "Data Visualization", Description: "Tableau, Power BI, Plotly", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Big Data Tools", Description: "Spark, Hadoop, cloud platforms", Duration: "2 months", Status: models.StepUpcoming},
			},
			EstimatedDuration: "7-12 months",
			SalaryRange:       "₹5-12 LPA starting",
			Difficulty:        models.DifficultyHard,
		},
		{
			ID:               6,
			Title:            "Digital Marketing Specialist",
			Description:      "Comprehensive digital marketing and growth strategy",
			SkillCategoryIDs: []int64{4},
			Steps: []models.RoadmapStep{
				{Title: "Digital Marketing Fundamentals", Description: "SEO, SEM, social media basics", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Content Marketing", Description: "Content strategy and creation", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Google Ads & Analytics", Description: "Paid advertising and analytics", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Social Media Marketing", Description: "Platform-specific strategies", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Marketing Automation", Description: "Tools and campaign optimization", Duration: "1 month", Status: models.StepUpcoming},
			},
			EstimatedDuration: "4-8 months",
			SalaryRange:       "₹2.5-6 LPA starting",
			Difficulty:        models.DifficultyEasy,
		},
		{
			ID:               7,
			Title:            "Financial Analyst",
			Description:      "Corporate finance and investment analysis",
			SkillCategoryIDs: []int64{5},
			Steps: []models.RoadmapStep{
				{Title: "Financial Fundamentals", Description: "Accounting and finance basics", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Excel & Financial Modeling", Description: "Advanced Excel and modeling", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Investment Analysis", Description: "Valuation and portfolio management", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Risk Management", Description: "Financial risk assessment", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Financial Software", Description: "Bloomberg, SQL, Python", Duration: "1.5 months", Status: models.StepUpcoming},
			},
			EstimatedDuration: "6-10 months",
			SalaryRange:       "₹3-8 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
		{
			ID:               8,
			Title:            "Biotechnology Researcher",
			Description:      "Research and development in life sciences",
			SkillCategoryIDs: []int64{6},
			Steps: []models.RoadmapStep{
				{Title: "Research Methodology", Description: "Scientific research principles", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Laboratory Techniques", Description: "Molecular biology and biochemistry", Duration: "3 months", Status: models.StepUpcoming},
				{Title: "Bioinformatics", Description: "Computational biology tools", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Data Analysis", Description: "Statistical analysis for research", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Industry Applications", Description: "Pharmaceutical and biotech industry", Duration: "2 months", Status: models.StepUpcoming},
			},
			EstimatedDuration: "8-12 months",
			SalaryRange:       "₹3-7 LPA starting",
			Difficulty:        models.DifficultyHard,
		},
		{
			ID:               9,
			Title:            "UX/UI Designer",
			Description:      "User experience and interface design",
			SkillCategoryIDs: []int64{2},
			Steps: []models.RoadmapStep{
				{Title: "Design Fundamentals", Description: "Color theory, typography, layout", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Figma & Design Tools", Description: "Professional design software", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "User Research", Description: "User interviews and testing", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Prototyping", Description: "Interactive prototypes", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Portfolio Development", Description: "Professional portfolio", Duration: "1 month", Status: models.StepUpcoming},
			},
			EstimatedDuration: "4-8 months",
			SalaryRange:       "₹3-7 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
		{
			ID:               10,
			Title:            "Business Analyst",
			Description:      "Business process analysis and optimization",
			SkillCategoryIDs: []int64{5, 3},
			Steps: []models.RoadmapStep{
				{Title: "Business Analysis Fundamentals", Description: "Requirements gathering and analysis", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Data Analysis Tools", Description: "Excel, SQL, Tableau", Duration: "2 months", Status: models.StepUpcoming},
				{Title: "Process Mapping", Description: "Business process documentation", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Project Management", Description: "Agile and project management skills", Duration: "1.5 months", Status: models.StepUpcoming},
				{Title: "Business Intelligence", Description: "BI tools and reporting", Duration: "2 months", Status: models.StepUpcoming},
			},
			EstimatedDuration: "6-9 months",
			SalaryRange:       "₹3.5-7 LPA starting",
			Difficulty:        models.DifficultyMedium,
		},
	}
}

// Jobs returns the initial job listings. Posting times are relative so the
// listing order stays meaningful regardless of when the store is seeded.
func Jobs() []models.Job {
	now := time.Now()
	return []models.Job{
		{
			ID:              1,
			Title:           "Junior Web Developer",
			Company:         "TechStartup Solutions",
			Location:        "Dehradun, Uttarakhand",
			Description:     "Looking for a passionate developer to join our growing team. Perfect for recent graduates or career changers.",
			Requirements:    []string{"React.js experience", "JavaScript proficiency", "HTML/CSS skills", "Problem-solving abilities"},
			SkillTags:       []string{"React.js", "JavaScript", "HTML/CSS"},
			SalaryRange:     strPtr("₹3-5 LPA"),
			ExperienceLevel: "Entry Level",
			JobType:         models.JobTypeFullTime,
			PostedAt:        now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:              2,
			Title:           "Data Analyst Intern",
			Company:         "Analytics Hub",
			Location:        "Dehradun, Uttarakhand",
			Description:     "6-month internship with potential for full-time conversion. Great learning opportunity in data analytics.",
			Requirements:    []string{"Excel proficiency", "Basic Python knowledge", "SQL understanding", "Analytical mindset"},
			SkillTags:       []string{"Excel", "Python", "SQL"},
			SalaryRange:     strPtr("₹20k/month"),
			ExperienceLevel: "Entry Level",
			JobType:         models.JobTypeInternship,
			PostedAt:        now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:              3,
			Title:           "UI/UX Designer",
			Company:         "Creative Agency Plus",
			Location:        "Dehradun, Uttarakhand",
			Description:     "Join our creative team to design digital experiences for clients across various industries.",
			Requirements:    []string{"Figma proficiency", "Adobe Creative Suite", "User research skills", "Portfolio required"},
			SkillTags:       []string{"Figma", "Adobe Creative Suite", "User Research"},
			SalaryRange:     strPtr("₹4-7 LPA"),
			ExperienceLevel: "Mid Level",
			JobType:         models.JobTypeFullTime,
			PostedAt:        now.Add(-3 * 24 * time.Hour),
		},
	}
}

// Mentors returns the initial mentor directory.
func Mentors() []models.Mentor {
	return []models.Mentor{
		{
			ID:              1,
			Name:            "Rajesh Kumar",
			Title:           "Senior Software Engineer",
			Company:         "TCS, Dehradun",
			Experience:      5,
			Specializations: []string{"React", "Node.js", "Career Switch"},
			Bio:             "Helping students transition from college to tech careers. I understand the struggle - I changed from mechanical to software!",
			ProfileImage:    strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120"),
			Rating:          48,
			TotalReviews:    120,
			MenteesCount:    25,
			Available:       true,
		},
		{
			ID:              2,
			Name:            "Priya Sharma",
			Title:           "UX Design Lead",
			Company:         "Wipro, Dehradun",
			Experience:      8,
			Specializations: []string{"UI/UX", "Figma", "Portfolio Review"},
			Bio:             "From engineering to design - I'll help you build an amazing portfolio and break into the design industry.",
			ProfileImage:    strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120"),
			Rating:          49,
			TotalReviews:    85,
			MenteesCount:    40,
			Available:       true,
		},
		{
			ID:              3,
			Name:            "Arjun Patel",
			Title:           "Data Scientist",
			Company:         "Amazon, Remote (Dehradun)",
			Experience:      6,
			Specializations: []string{"Python", "ML", "SQL"},
			Bio:             "From mechanical engineering graduate to FAANG data scientist. Let me guide your data science journey!",
			ProfileImage:    strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120"),
			Rating:          47,
			TotalReviews:    95,
			MenteesCount:    30,
			Available:       true,
		},
	}
}

// CommunityGroups returns the initial community groups.
func CommunityGroups() []models.CommunityGroup {
	now := time.Now()
	return []models.CommunityGroup{
		{
			ID:           1,
			Name:         "Career Switchers to Tech",
			Description:  "For students from non-tech backgrounds transitioning to software development, data science, and other tech careers.",
			Category:     "Technology",
			Icon:         "fas fa-code",
			MemberCount:  248,
			WhatsappLink: strPtr("https://chat.whatsapp.com/invite-link-1"),
			Active:       true,
			CreatedAt:    now,
		},
		{
			ID:           2,
			Name:         "Graphic Era Career Support",
			Description:  "Official support group for Graphic Era students exploring alternative career paths beyond their current courses.",
			Category:     "University",
			Icon:         "fas fa-graduation-cap",
			MemberCount:  156,
			WhatsappLink: strPtr("https://chat.whatsapp.com/invite-link-2"),
			Active:       true,
			CreatedAt:    now,
		},
		{
			ID:           3,
			Name:         "Creative Careers Network",
			Description:  "For students interested in design, content creation, digital marketing, and other creative career paths.",
			Category:     "Creative",
			Icon:         "fas fa-paint-brush",
			MemberCount:  89,
			WhatsappLink: strPtr("https://chat.whatsapp.com/invite-link-3"),
			Active:       true,
			CreatedAt:    now,
		},
	}
}

// Skills returns the seeded skills per category.
func Skills() []models.Skill {
	return []models.Skill{
		{ID: 1, Name: "JavaScript", CategoryID: 1, Description: strPtr("Core language of the web")},
		{ID: 2, Name: "React.js", CategoryID: 1, Description: strPtr("Component-based frontend framework")},
		{ID: 3, Name: "Node.js", CategoryID: 1, Description: strPtr("Server-side JavaScript runtime")},
		{ID: 4, Name: "Figma", CategoryID: 2, Description: strPtr("Collaborative interface design tool")},
		{ID: 5, Name: "User Research", CategoryID: 2, Description: strPtr("Interviews, surveys and usability testing")},
		{ID: 6, Name: "SQL", CategoryID: 3, Description: strPtr("Querying relational data")},
		{ID: 7, Name: "Python", CategoryID: 3, Description: strPtr("Scripting and data analysis")},
		{ID: 8, Name: "SEO", CategoryID: 4, Description: strPtr("Search engine optimization")},
		{ID: 9, Name: "Financial Modeling", CategoryID: 5, Description: strPtr("Excel-based valuation and forecasting")},
		{ID: 10, Name: "Deep Learning", CategoryID: 7, Description: strPtr("Neural networks and frameworks")},
	}
}
