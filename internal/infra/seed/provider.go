// Package seed contains SeedSource implementations that deliver the
// default catalog document.
package seed

import (
	"context"
	"log/slog"

	"orderpad/config"
	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/service"

	"go.uber.org/fx"
)

// noopSource is a no-op implementation when no seed source is configured
type noopSource struct {
	logger *slog.Logger
}

func (s *noopSource) Fetch(ctx context.Context) ([]*entity.Product, error) {
	s.logger.Debug("[NoopSeed] No seed source configured, catalog stays empty")

	return nil, nil
}

// SourceParams holds dependencies for the SeedSource, injected by Fx
type SourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates a SeedSource based on configuration. A URL wins over
// a file path; with neither set the source is a no-op and the catalog
// starts empty.
func NewSource(params SourceParams) service.SeedSource {
	cfg := params.Config.Seed
	logger := params.Logger

	if cfg == nil || (cfg.URL == "" && cfg.Path == "") {
		logger.Info("Seed source not configured, using no-op source")

		return &noopSource{logger: logger}
	}

	if cfg.URL != "" {
		return NewHTTPSource(cfg.URL, cfg.Timeout, logger)
	}

	return NewFileSource(cfg.Path, logger)
}
