package usecase

import (
	"context"
	"time"

	"team-registration/internal/documents"
	"team-registration/internal/metrics"
	"team-registration/internal/repository"
	"team-registration/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ApplicationUsecaseInterface
	TeamMemberUsecaseInterface
	DocumentUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	docs documents.Store,
	mtr *metrics.Metrics,
	timeout time.Duration,
	maxUploadFiles int,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, docs, mtr, timeout, maxUploadFiles)
}
