// Package domain contains application Usecases orchestrating domain logic by application.
package domain

import (
	"context"
	"fmt"

	"team-registration/internal/credentials"
	"team-registration/internal/entities"
)

// SubmitApplication mints credentials for a new application and persists it.
func (u *Usecase) SubmitApplication(ctx context.Context, app entities.Application) (*entities.Application, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case app.TeamName == "":
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	case app.Region == "":
		return nil, fmt.Errorf("%w: region is required", entities.ErrInvalidArgument)
	case app.ContactPerson == "":
		return nil, fmt.Errorf("%w: contact_person is required", entities.ErrInvalidArgument)
	case app.LeaderName == "":
		return nil, fmt.Errorf("%w: leader_name is required", entities.ErrInvalidArgument)
	}

	pair, err := credentials.New(app.LeaderName)
	if err != nil {
		u.log.Errorw("failed to generate credentials", "error", err)
		return nil, err
	}
	app.Login = pair.Login
	app.Password = pair.Password

	created, err := u.repo.CreateApplication(ctx, app)
	if err != nil {
		return nil, err
	}

	u.metrics.IncApplicationsSubmitted()
	return created, nil
}

// Applications returns all applications ordered by id.
func (u *Usecase) Applications(ctx context.Context) ([]entities.Application, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListApplications(ctx)
}

// Preview composes one application with its full roster.
// The application and member reads are independent queries; a member added
// concurrently between them may or may not appear.
func (u *Usecase) Preview(ctx context.Context, applicationID int64) (*entities.ApplicationPreview, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if applicationID <= 0 {
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	}

	app, err := u.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	members, err := u.repo.ListTeamMembers(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	return &entities.ApplicationPreview{Application: *app, Members: members}, nil
}
