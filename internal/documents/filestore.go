package documents

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"team-registration/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// staticFiles maps logical document names to files under the static dir.
var staticFiles = map[string]string{
	"consent":          "consent.pdf",
	"participant_info": "participant_info.pdf",
}

// FileStore keeps uploads and static documents on the local filesystem.
type FileStore struct {
	log        *zap.SugaredLogger
	uploadsDir string
	staticDir  string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the uploads directory if needed and returns the store.
func NewFileStore(log *zap.SugaredLogger, uploadsDir, staticDir string) (*FileStore, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &FileStore{
		log:        log.Named("documents"),
		uploadsDir: uploadsDir,
		staticDir:  staticDir,
	}, nil
}

// Save writes the stream under a generated identifier, keeping the original
// extension so downloads stay openable.
func (s *FileStore) Save(_ context.Context, fileName string, content io.Reader) (Stored, error) {
	id := uuid.New().String() + filepath.Ext(fileName)
	dst := filepath.Join(s.uploadsDir, id)

	f, err := os.Create(dst)
	if err != nil {
		return Stored{}, fmt.Errorf("create upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(dst)
		return Stored{}, fmt.Errorf("write upload file: %w", err)
	}

	s.log.Infow("document stored", "id", id, "file_name", fileName)
	return Stored{ID: id, FileName: fileName}, nil
}

// OpenStatic resolves a logical document name to a file stream.
func (s *FileStore) OpenStatic(_ context.Context, name string) (io.ReadCloser, string, error) {
	fileName, ok := staticFiles[name]
	if !ok {
		return nil, "", entities.ErrDocumentNotFound
	}

	f, err := os.Open(filepath.Join(s.staticDir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", entities.ErrDocumentNotFound
		}
		return nil, "", fmt.Errorf("open static document: %w", err)
	}
	return f, fileName, nil
}
