package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillsynergy/api/internal/app/models"
)

const assessmentColumns = `id, user_id, course, year, skill_category_ids, experience_level, career_goals, time_commitment, completed, created_at`

func scanAssessment(row pgx.Row) (*models.UserAssessment, error) {
	var a models.UserAssessment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Course,
		&a.Year,
		&a.SkillCategoryIDs,
		&a.ExperienceLevel,
		&a.CareerGoals,
		&a.TimeCommitment,
		&a.Completed,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning assessment: %w", err)
	}
	return &a, nil
}

func (s *PostgresStorage) GetUserAssessment(ctx context.Context, userID int64) (*models.UserAssessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM user_assessments WHERE user_id = $1`
	return scanAssessment(s.db.QueryRow(ctx, query, userID))
}

func (s *PostgresStorage) CreateUserAssessment(ctx context.Context, userID int64, assessment *models.UserAssessment) (*models.UserAssessment, error) {
	query := `
		INSERT INTO user_assessments
			(user_id, course, year, skill_category_ids, experience_level, career_goals, time_commitment, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + assessmentColumns

	created, err := scanAssessment(s.db.QueryRow(ctx, query,
		userID,
		assessment.Course,
		assessment.Year,
		assessment.SkillCategoryIDs,
		assessment.ExperienceLevel,
		assessment.CareerGoals,
		assessment.TimeCommitment,
		assessment.Completed,
	))
	if err != nil {
		return nil, fmt.Errorf("error creating assessment: %w", err)
	}
	return created, nil
}

func (s *PostgresStorage) UpdateUserAssessment(ctx context.Context, userID int64, patch models.AssessmentPatch) (*models.UserAssessment, error) {
	builder := psql.Update("user_assessments").Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING " + assessmentColumns)

	changed := false
	if patch.Course != nil {
		builder = builder.Set("course", *patch.Course)
		changed = true
	}
	if patch.Year != nil {
		builder = builder.Set("year", *patch.Year)
		changed = true
	}
	if patch.SkillCategoryIDs != nil {
		builder = builder.Set("skill_category_ids", patch.SkillCategoryIDs)
		changed = true
	}
	if patch.ExperienceLevel != nil {
		builder = builder.Set("experience_level", *patch.ExperienceLevel)
		changed = true
	}
	if patch.CareerGoals != nil {
		builder = builder.Set("career_goals", *patch.CareerGoals)
		changed = true
	}
	if patch.TimeCommitment != nil {
		builder = builder.Set("time_commitment", *patch.TimeCommitment)
		changed = true
	}
	if patch.Completed != nil {
		builder = builder.Set("completed", *patch.Completed)
		changed = true
	}

	if !changed {
		return s.GetUserAssessment(ctx, userID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanAssessment(s.db.QueryRow(ctx, sql, args...))
}
