package seed

import (
	"context"
	"log/slog"
	"os"

	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/service"

	"github.com/pkg/errors"
)

// fileSource reads the seed catalog document from a local file, for
// offline use and development.
type fileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a SeedSource that reads the catalog document
// from disk.
func NewFileSource(path string, logger *slog.Logger) service.SeedSource {
	return &fileSource{
		path:   path,
		logger: logger,
	}
}

func (s *fileSource) Fetch(ctx context.Context) ([]*entity.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}

	products, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Seed catalog loaded from file",
		slog.String("path", s.path),
		slog.Int("products", len(products)),
	)

	return products, nil
}
