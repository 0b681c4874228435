package usecase

import (
	"context"
	"io"

	"team-registration/internal/documents"
	"team-registration/internal/entities"
)

// ApplicationUsecaseInterface abstracts application-related operations for delivery layer.
type ApplicationUsecaseInterface interface {
	SubmitApplication(ctx context.Context, app entities.Application) (*entities.Application, error)
	Applications(ctx context.Context) ([]entities.Application, error)
	Preview(ctx context.Context, applicationID int64) (*entities.ApplicationPreview, error)
}

// TeamMemberUsecaseInterface abstracts roster-related operations.
type TeamMemberUsecaseInterface interface {
	AddTeamMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	TeamMembers(ctx context.Context, applicationID int64) ([]entities.TeamMember, error)
}

// DocumentUsecaseInterface abstracts document gateway operations.
type DocumentUsecaseInterface interface {
	StoreDocuments(ctx context.Context, applicationID int64, files []documents.Upload) ([]documents.Stored, error)
	OpenDocument(ctx context.Context, name string) (io.ReadCloser, string, error)
}
