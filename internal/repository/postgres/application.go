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
	insertApplicationQuery = `
INSERT INTO applications(team_name, region, contact_person, leader_name, login, password)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, submitted_at`
	selectApplicationsQuery = `
SELECT id, team_name, region, contact_person, leader_name, login, password, submitted_at
FROM applications
ORDER BY id`
	selectApplicationQuery = `
SELECT id, team_name, region, contact_person, leader_name, login, password, submitted_at
FROM applications
WHERE id = $1`
)

const uniqueViolationCode = "23505"

// CreateApplication inserts an application and returns it with the
// store-assigned id and submission timestamp.
func (p *Postgres) CreateApplication(ctx context.Context, app entities.Application) (*entities.Application, error) {
	err := p.db.QueryRow(ctx, insertApplicationQuery,
		app.TeamName, app.Region, app.ContactPerson, app.LeaderName, app.Login, app.Password,
	).Scan(&app.ID, &app.SubmittedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrLoginExists
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	p.log.Infow("application created", "id", app.ID, "team", app.TeamName, "login", app.Login)
	return &app, nil
}

// ListApplications returns all applications in ascending id order.
func (p *Postgres) ListApplications(ctx context.Context) ([]entities.Application, error) {
	rows, err := p.db.Query(ctx, selectApplicationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]entities.Application, 0)
	for rows.Next() {
		var a entities.Application
		if err := rows.Scan(&a.ID, &a.TeamName, &a.Region, &a.ContactPerson, &a.LeaderName, &a.Login, &a.Password, &a.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	return apps, nil
}

// GetApplication fetches one application by id.
func (p *Postgres) GetApplication(ctx context.Context, id int64) (*entities.Application, error) {
	var a entities.Application
	err := p.db.QueryRow(ctx, selectApplicationQuery, id).
		Scan(&a.ID, &a.TeamName, &a.Region, &a.ContactPerson, &a.LeaderName, &a.Login, &a.Password, &a.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}
