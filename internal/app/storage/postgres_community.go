package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/skillsynergy/api/internal/app/models"
)

const groupColumns = `id, name, description, category, icon, member_count, whatsapp_link, active, created_at`

func scanGroup(row pgx.Row) (*models.CommunityGroup, error) {
	var g models.CommunityGroup
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.Category,
		&g.Icon,
		&g.MemberCount,
		&g.WhatsappLink,
		&g.Active,
		&g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning community group: %w", err)
	}
	return &g, nil
}

// GetCommunityGroups lists active groups only.
func (s *PostgresStorage) GetCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM community_groups WHERE active = TRUE ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving community groups: %w", err)
	}
	defer rows.Close()

	groups := make([]models.CommunityGroup, 0)
	for rows.Next() {
		var g models.CommunityGroup
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Description,
			&g.Category,
			&g.Icon,
			&g.MemberCount,
			&g.WhatsappLink,
			&g.Active,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *PostgresStorage) GetCommunityGroup(ctx context.Context, id int64) (*models.CommunityGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM community_groups WHERE id = $1`
	return scanGroup(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) CreateCommunityGroup(ctx context.Context, group *models.CommunityGroup) (*models.CommunityGroup, error) {
	// Member count always starts at zero, whatever the caller sent.
	query := `
		INSERT INTO community_groups (name, description, category, icon, member_count, whatsapp_link, active)
		VALUES ($1, $2, $3, $4, 0, $5, $6)
		RETURNING ` + groupColumns

	created, err := scanGroup(s.db.QueryRow(ctx, query,
		group.Name, group.Description, group.Category, group.Icon, group.WhatsappLink, group.Active))
	if err != nil {
		return nil, fmt.Errorf("error creating community group: %w", err)
	}
	return created, nil
}

// JoinCommunityGroup increments the member count in a single UPDATE so
// concurrent joins never lose updates.
func (s *PostgresStorage) JoinCommunityGroup(ctx context.Context, groupID int64) (*models.CommunityGroup, error) {
	query := `
		UPDATE community_groups
		SET member_count = member_count + 1
		WHERE id = $1
		RETURNING ` + groupColumns

	return scanGroup(s.db.QueryRow(ctx, query, groupID))
}
