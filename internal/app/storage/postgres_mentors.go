package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillsynergy/api/internal/app/models"
)

const mentorColumns = `id, name, title, company, experience, specializations, bio, profile_image, rating, total_reviews, mentees_count, available`

const mentorRequestColumns = `id, user_id, mentor_id, message, status, created_at`

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	var m models.Mentor
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Title,
		&m.Company,
		&m.Experience,
		&m.Specializations,
		&m.Bio,
		&m.ProfileImage,
		&m.Rating,
		&m.TotalReviews,
		&m.MenteesCount,
		&m.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning mentor: %w", err)
	}
	return &m, nil
}

// GetMentors lists available mentors, optionally narrowed by specialization.
func (s *PostgresStorage) GetMentors(ctx context.Context, filters MentorFilters) ([]models.Mentor, error) {
	builder := psql.Select(mentorColumns).From("mentors").
		Where(squirrel.Eq{"available": true}).
		OrderBy("id")

	if filters.Specialization != "" {
		builder = builder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(specializations) AS spec WHERE spec ILIKE ?)",
			"%"+filters.Specialization+"%",
		))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]models.Mentor, 0)
	for rows.Next() {
		var m models.Mentor
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Title,
			&m.Company,
			&m.Experience,
			&m.Specializations,
			&m.Bio,
			&m.ProfileImage,
			&m.Rating,
			&m.TotalReviews,
			&m.MenteesCount,
			&m.Available,
		); err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

func (s *PostgresStorage) GetMentor(ctx context.Context, id int64) (*models.Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE id = $1`
	return scanMentor(s.db.QueryRow(ctx, query, id))
}

func scanMentorRequest(row pgx.Row) (*models.MentorRequest, error) {
	var r models.MentorRequest
	err := row.Scan(&r.ID, &r.UserID, &r.MentorID, &r.Message, &r.Status, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning mentor request: %w", err)
	}
	return &r, nil
}

func (s *PostgresStorage) CreateMentorRequest(ctx context.Context, userID int64, request *models.MentorRequest) (*models.MentorRequest, error) {
	// Status is always pending on creation, whatever the caller sent.
	query := `
		INSERT INTO mentor_requests (user_id, mentor_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + mentorRequestColumns

	created, err := scanMentorRequest(s.db.QueryRow(ctx, query,
		userID, request.MentorID, request.Message, models.RequestPending))
	if err != nil {
		return nil, fmt.Errorf("error creating mentor request: %w", err)
	}
	return created, nil
}

func (s *PostgresStorage) GetMentorRequests(ctx context.Context, userID int64) ([]models.MentorRequest, error) {
	query := `SELECT ` + mentorRequestColumns + ` FROM mentor_requests WHERE user_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentor requests: %w", err)
	}
	defer rows.Close()

	requests := make([]models.MentorRequest, 0)
	for rows.Next() {
		var r models.MentorRequest
		if err := rows.Scan(&r.ID, &r.UserID, &r.MentorID, &r.Message, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}
