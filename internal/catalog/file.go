package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// LoadFile reads a plant catalog from a .csv, .json, .yaml or .yml file
func LoadFile(ctx context.Context, path string, opts Options) ([]domain.PlantCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var plants []domain.PlantCandidate
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		plants, err = parseCSV(ctx, bytes.NewReader(data), opts)
	case ".json":
		plants, err = parseJSON(ctx, data, opts)
	case ".yaml", ".yml":
		plants, err = parseYAML(ctx, data, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog extension %q", domain.ErrInvalidCatalog, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return plants, nil
}

// FileProvider serves a catalog loaded once from disk.
// File catalogs carry no regional prices, so the region is ignored.
type FileProvider struct {
	plants []domain.PlantCandidate
}

// NewFileProvider wraps an already loaded catalog
func NewFileProvider(plants []domain.PlantCandidate) *FileProvider {
	return &FileProvider{plants: clonePlants(plants)}
}

// LoadFileProvider loads path and applies the growing cost table when one is given
func LoadFileProvider(ctx context.Context, path string, costs *GrowingCostTable, opts Options) (*FileProvider, error) {
	plants, err := LoadFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if costs != nil {
		plants = costs.Apply(plants)
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "plants", len(plants), "categories", len(Categories(plants)))
	return &FileProvider{plants: plants}, nil
}

// GetCatalog returns a copy of the catalog
func (p *FileProvider) GetCatalog(_ context.Context, _ string) ([]domain.PlantCandidate, error) {
	return clonePlants(p.plants), nil
}

// Len returns the number of plants in the catalog
func (p *FileProvider) Len() int {
	return len(p.plants)
}
