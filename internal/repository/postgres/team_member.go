package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-registration/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectApplicationExistsQuery = `SELECT 1 FROM applications WHERE id = $1`
	insertTeamMemberQuery        = `
INSERT INTO team_members(application_id, full_name, date_of_birth, phone, email, role, sport, student_card, disability, disability_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	selectTeamMembersQuery = `
SELECT id, application_id, full_name, date_of_birth, phone, email, role, sport, student_card, disability, disability_reason
FROM team_members
WHERE application_id = $1
ORDER BY id`
)

const fkViolationCode = "23503"

// AddTeamMember inserts a roster entry for an existing application.
// Existence is checked before the insert so a missing parent surfaces as a
// typed not-found error; the FK violation path covers a parent lost to a
// concurrent request between the check and the insert.
func (p *Postgres) AddTeamMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	var one int
	if err := p.db.QueryRow(ctx, selectApplicationExistsQuery, member.ApplicationID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("application lookup: %w", err)
	}

	err := p.db.QueryRow(ctx, insertTeamMemberQuery,
		member.ApplicationID, member.FullName, member.DateOfBirth, member.Phone, member.Email,
		member.Role, member.Sport, member.StudentCard, member.Disability, member.DisabilityReason,
	).Scan(&member.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("insert team member: %w", err)
	}

	p.log.Infow("team member added", "id", member.ID, "application_id", member.ApplicationID, "role", member.Role)
	return &member, nil
}

// ListTeamMembers returns the roster of one application in ascending id
// order. An unknown application id yields an empty list, not an error.
func (p *Postgres) ListTeamMembers(ctx context.Context, applicationID int64) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.ApplicationID, &m.FullName, &m.DateOfBirth, &m.Phone, &m.Email,
			&m.Role, &m.Sport, &m.StudentCard, &m.Disability, &m.DisabilityReason); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}

	return members, nil
}
