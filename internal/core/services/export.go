package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService runs the screener pipeline end to end.
type ExportService struct {
	settings   domain.Settings
	fetchers   driven.FetcherFactory
	decoder    driven.Decoder
	extractor  driven.TableExtractor
	normaliser driven.CellNormaliser
	store      driven.OutputStore
	renderers  []driven.Renderer
}

// NewExportService creates a new export service.
// Renderers run in order; the store receives all of their artifacts at once.
func NewExportService(
	settings domain.Settings,
	fetchers driven.FetcherFactory,
	decoder driven.Decoder,
	extractor driven.TableExtractor,
	normaliser driven.CellNormaliser,
	store driven.OutputStore,
	renderers ...driven.Renderer,
) *ExportService {
	return &ExportService{
		settings:   settings,
		fetchers:   fetchers,
		decoder:    decoder,
		extractor:  extractor,
		normaliser: normaliser,
		store:      store,
		renderers:  renderers,
	}
}

// Export runs the pipeline and publishes every output.
func (s *ExportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	result, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		return nil, errors.New("publish: output store not configured")
	}

	logger.Section("Publish")
	var artifacts []domain.Artifact
	for _, r := range s.renderers {
		rendered, err := r.Render(result)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r.Name(), err)
		}
		logger.Debug("renderer %s produced %d artifacts", r.Name(), len(rendered))
		artifacts = append(artifacts, rendered...)
	}

	dir := req.OutputDir
	if dir == "" {
		dir = s.settings.Output.Dir
	}

	files, err := s.store.Write(ctx, dir, artifacts)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	result.Files = files

	logger.Info("run %s wrote %d files to %s", result.RunID, len(files), dir)
	return result, nil
}

// Preview runs the pipeline without publishing.
func (s *ExportService) Preview(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	return s.run(ctx, req)
}

// run fetches, decodes, extracts, normalises and assembles.
func (s *ExportService) run(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	if s.fetchers == nil || s.decoder == nil || s.extractor == nil || s.normaliser == nil {
		return nil, errors.New("export service not fully configured")
	}

	runID := uuid.New().String()

	logger.Section("Fetch")
	fetcher, err := s.fetchers.Create(req)
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}
	raw, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched %d bytes from %s", len(raw.Content), raw.URI)

	logger.Section("Decode")
	text, label := s.decoder.Decode(raw)

	logger.Section("Extract")
	table, err := s.extractor.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("extract table: %w", err)
	}

	logger.Section("Normalise")
	rows := NormaliseRows(table.Header, table.Rows, s.settings.Columns, s.normaliser.Normalise)
	full, curated := Assemble(table.Header, rows, s.settings.Columns.Curated)
	logger.Debug("normalised %d rows across %d columns", len(rows), len(table.Header))

	for _, name := range s.settings.Columns.Curated {
		if full.Column(name) == nil {
			logger.Warn("curated column %q not found in source header", name)
		}
	}

	return &domain.ExportResult{
		RunID:     runID,
		Source:    raw.URI,
		FetchedAt: raw.FetchedAt,
		Charset:   label,
		Full:      full,
		Curated:   curated,
		Fragment:  table.Markup,
	}, nil
}
