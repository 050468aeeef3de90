package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/skillsynergy/api/internal/app/models"
)

const roadmapColumns = `id, title, description, skill_category_ids, steps, estimated_duration, salary_range, difficulty`

func (s *PostgresStorage) GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	query := `SELECT id, name, description, icon FROM skill_categories ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving skill categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.SkillCategory, 0)
	for rows.Next() {
		var c models.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStorage) GetSkillsByCategory(ctx context.Context, categoryID int64) ([]models.Skill, error) {
	query := `SELECT id, name, category_id, description FROM skills WHERE category_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving skills: %w", err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.CategoryID, &sk.Description); err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

func scanRoadmapRows(rows pgx.Rows) ([]models.Roadmap, error) {
	defer rows.Close()

	roadmaps := make([]models.Roadmap, 0)
	for rows.Next() {
		var r models.Roadmap
		if err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.Description,
			&r.SkillCategoryIDs,
			&r.Steps,
			&r.EstimatedDuration,
			&r.SalaryRange,
			&r.Difficulty,
		); err != nil {
			return nil, err
		}
		roadmaps = append(roadmaps, r)
	}
	return roadmaps, rows.Err()
}

func (s *PostgresStorage) GetRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmaps ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roadmaps: %w", err)
	}
	return scanRoadmapRows(rows)
}

func (s *PostgresStorage) GetRoadmapsBySkillCategories(ctx context.Context, categoryIDs []int64) ([]models.Roadmap, error) {
	// Non-empty intersection between the stored jsonb id array and the
	// requested ids.
	query := `
		SELECT ` + roadmapColumns + `
		FROM roadmaps
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(skill_category_ids) AS elem
			WHERE (elem)::bigint = ANY($1)
		)
		ORDER BY id`

	rows, err := s.db.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roadmaps by categories: %w", err)
	}
	return scanRoadmapRows(rows)
}

func (s *PostgresStorage) GetRoadmap(ctx context.Context, id int64) (*models.Roadmap, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmaps WHERE id = $1`

	var r models.Roadmap
	err := s.db.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.SkillCategoryIDs,
		&r.Steps,
		&r.EstimatedDuration,
		&r.SalaryRange,
		&r.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving roadmap: %w", err)
	}
	return &r, nil
}
