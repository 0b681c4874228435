// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"team-registration/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ApplicationInterface exposes application-related operations.
type ApplicationInterface interface {
	CreateApplication(ctx context.Context, app entities.Application) (*entities.Application, error)
	ListApplications(ctx context.Context) ([]entities.Application, error)
	GetApplication(ctx context.Context, id int64) (*entities.Application, error)
}

// TeamMemberInterface exposes roster-related operations.
type TeamMemberInterface interface {
	AddTeamMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context, applicationID int64) ([]entities.TeamMember, error)
}
