package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
	"github.com/skillsynergy/api/internal/pkg/dberrors"
)

// psql builds queries with Postgres-style placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PostgresStorage implements Storage on top of a pgx connection pool.
// Sequence-valued fields live in jsonb columns and ride pgx's JSON codec.
type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage creates a Postgres-backed store.
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const userColumns = `id, username, email, password, full_name, course, year, profile_complete, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FullName,
		&user.Course,
		&user.Year,
		&user.ProfileComplete,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(s.db.QueryRow(ctx, query, username))
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(s.db.QueryRow(ctx, query, email))
}

func (s *PostgresStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, full_name, course, year, profile_complete)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING ` + userColumns

	created, err := scanUser(s.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.FullName, user.Course, user.Year))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

func (s *PostgresStorage) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	builder := psql.Update("users").Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	changed := false
	if patch.FullName != nil {
		builder = builder.Set("full_name", *patch.FullName)
		changed = true
	}
	if patch.Course != nil {
		builder = builder.Set("course", *patch.Course)
		changed = true
	}
	if patch.Year != nil {
		builder = builder.Set("year", *patch.Year)
		changed = true
	}
	if patch.ProfileComplete != nil {
		builder = builder.Set("profile_complete", *patch.ProfileComplete)
		changed = true
	}

	if !changed {
		return s.GetUser(ctx, id)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanUser(s.db.QueryRow(ctx, sql, args...))
}
