package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillsynergy/api/internal/app/models"
)

const jobColumns = `id, title, company, location, description, requirements, skill_tags, salary_range, experience_level, job_type, posted_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.Description,
		&j.Requirements,
		&j.SkillTags,
		&j.SalaryRange,
		&j.ExperienceLevel,
		&j.JobType,
		&j.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning job: %w", err)
	}
	return &j, nil
}

// GetJobs applies the optional filters conjunctively and returns listings
// most recent first.
func (s *PostgresStorage) GetJobs(ctx context.Context, filters JobFilters) ([]models.Job, error) {
	builder := psql.Select(jobColumns).From("jobs").OrderBy("posted_at DESC")

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"company": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.Expr(
				"EXISTS (SELECT 1 FROM jsonb_array_elements_text(skill_tags) AS tag WHERE tag ILIKE ?)",
				pattern,
			),
		})
	}
	if filters.ExperienceLevel != "" {
		builder = builder.Where(squirrel.Eq{"experience_level": filters.ExperienceLevel})
	}
	if filters.JobType != "" {
		builder = builder.Where(squirrel.Eq{"job_type": filters.JobType})
	}
	if filters.Location != "" {
		builder = builder.Where(squirrel.ILike{"location": "%" + filters.Location + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&j.Description,
			&j.Requirements,
			&j.SkillTags,
			&j.SalaryRange,
			&j.ExperienceLevel,
			&j.JobType,
			&j.PostedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *PostgresStorage) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(s.db.QueryRow(ctx, query, id))
}
