package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData inserts the reference catalog (skill categories, skills,
// roadmaps, jobs, mentors, community groups) if it is not already present.
// Each fixture carries a stable id and is inserted with ON CONFLICT DO
// NOTHING, so re-running the seeder never duplicates or overwrites rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default catalog data...")
	var finalErr error

	for _, c := range SkillCategories() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO skill_categories (id, name, description, icon)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Description, c.Icon)
		if err != nil {
			lgr.Error().Err(err).Str("category", c.Name).Msg("Error seeding skill category")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, sk := range Skills() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO skills (id, name, category_id, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			sk.ID, sk.Name, sk.CategoryID, sk.Description)
		if err != nil {
			lgr.Error().Err(err).Str("skill", sk.Name).Msg("Error seeding skill")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, r := range Roadmaps() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO roadmaps (id, title, description, skill_category_ids, steps, estimated_duration, salary_range, difficulty)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			r.ID, r.Title, r.Description, r.SkillCategoryIDs, r.Steps, r.EstimatedDuration, r.SalaryRange, r.Difficulty)
		if err != nil {
			lgr.Error().Err(err).Str("roadmap", r.Title).Msg("Error seeding roadmap")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, j := range Jobs() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO jobs (id, title, company, location, description, requirements, skill_tags, salary_range, experience_level, job_type, posted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			j.ID, j.Title, j.Company, j.Location, j.Description, j.Requirements, j.SkillTags,
			j.SalaryRange, j.ExperienceLevel, j.JobType, j.PostedAt)
		if err != nil {
			lgr.Error().Err(err).Str("job", j.Title).Msg("Error seeding job")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, m := range Mentors() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO mentors (id, name, title, company, experience, specializations, bio, profile_image, rating, total_reviews, mentees_count, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Name, m.Title, m.Company, m.Experience, m.Specializations, m.Bio,
			m.ProfileImage, m.Rating, m.TotalReviews, m.MenteesCount, m.Available)
		if err != nil {
			lgr.Error().Err(err).Str("mentor", m.Name).Msg("Error seeding mentor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, g := range CommunityGroups() {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO community_groups (id, name, description, category, icon, member_count, whatsapp_link, active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			g.ID, g.Name, g.Description, g.Category, g.Icon, g.MemberCount, g.WhatsappLink, g.Active, g.CreatedAt)
		if err != nil {
			lgr.Error().Err(err).Str("group", g.Name).Msg("Error seeding community group")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Fixtures insert explicit ids, so the serial sequences must be bumped
	// past them before the first organic INSERT.
	for _, table := range []string{"skill_categories", "skills", "roadmaps", "jobs", "mentors", "community_groups"} {
		if err := syncSequence(ctx, dbPool, table); err != nil {
			lgr.Error().Err(err).Str("table", table).Msg("Error syncing id sequence")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default catalog data check/creation finished.")
	return finalErr
}

func syncSequence(ctx context.Context, dbPool *pgxpool.Pool, table string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
		table, table)
	if _, err := dbPool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to sync sequence for %s: %w", table, err)
	}
	return nil
}
