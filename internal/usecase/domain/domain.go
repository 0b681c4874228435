package domain

import (
	"context"
	"time"

	"team-registration/internal/documents"
	"team-registration/internal/metrics"
	"team-registration/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx            context.Context
	log            *zap.SugaredLogger
	repo           repository.Repository
	docs           documents.Store
	metrics        *metrics.Metrics
	timeout        time.Duration
	maxUploadFiles int
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
) *Usecase {
	return &Usecase{
		ctx:            ctx,
		log:            log,
		repo:           repo,
		docs:           docs,
		metrics:        mtr,
		timeout:        timeout,
		maxUploadFiles: maxUploadFiles,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
