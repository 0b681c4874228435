// Package domain contains application Usecases orchestrating domain logic by documents.
package domain

import (
	"context"
	"fmt"
	"io"

	"team-registration/internal/documents"
	"team-registration/internal/entities"
)

// StoreDocuments persists the supporting files of one application.
// File content and size are not validated, only the count cap.
func (u *Usecase) StoreDocuments(ctx context.Context, applicationID int64, files []documents.Upload) ([]documents.Stored, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case applicationID <= 0:
		return nil, fmt.Errorf("%w: application_id is required", entities.ErrInvalidArgument)
	case len(files) == 0:
		return nil, fmt.Errorf("%w: at least one file is required", entities.ErrInvalidArgument)
	case len(files) > u.maxUploadFiles:
		return nil, fmt.Errorf("%w: at most %d files per upload", entities.ErrInvalidArgument, u.maxUploadFiles)
	}

	if _, err := u.repo.GetApplication(ctx, applicationID); err != nil {
		return nil, err
	}

	stored := make([]documents.Stored, 0, len(files))
	for _, f := range files {
		s, err := u.docs.Save(ctx, f.FileName, f.Content)
		if err != nil {
			u.log.Errorw("failed to store document", "application_id", applicationID, "file_name", f.FileName, "error", err)
			return nil, err
		}
		stored = append(stored, s)
		u.metrics.IncDocumentsUploaded()
	}

	return stored, nil
}

// OpenDocument streams a static registration document by logical name.
func (u *Usecase) OpenDocument(ctx context.Context, name string) (io.ReadCloser, string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, "", fmt.Errorf("%w: document name is required", entities.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	return u.docs.OpenStatic(ctx, name)
}
