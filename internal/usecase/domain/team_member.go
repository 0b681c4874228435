// Package domain contains application Usecases orchestrating domain logic by roster.
package domain

import (
	"context"
	"fmt"

	"team-registration/internal/entities"
)

// AddTeamMember validates and persists one roster entry.
func (u *Usecase) AddTeamMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case member.ApplicationID <= 0:
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	case member.FullName == "":
		return nil, fmt.Errorf("%w: full_name is required", entities.ErrInvalidArgument)
	case member.DateOfBirth == "":
		return nil, fmt.Errorf("%w: date_of_birth is required", entities.ErrInvalidArgument)
	case member.Phone == "":
		return nil, fmt.Errorf("%w: phone is required", entities.ErrInvalidArgument)
	case member.Email == "":
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	case member.Role == "":
		return nil, fmt.Errorf("%w: role is required", entities.ErrInvalidArgument)
	}

	added, err := u.repo.AddTeamMember(ctx, member)
	if err != nil {
		return nil, err
	}

	u.metrics.IncTeamMembersAdded()
	return added, nil
}

// TeamMembers returns the roster of one application ordered by id.
// An unknown application id yields an empty roster, not an error.
func (u *Usecase) TeamMembers(ctx context.Context, applicationID int64) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if applicationID <= 0 {
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListTeamMembers(ctx, applicationID)
}
