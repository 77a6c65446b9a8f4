package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// ScratchStoreAdapter writes staged test files into the project's scratch directory
type ScratchStoreAdapter struct {
	dir string
}

// NewScratchStoreAdapter creates a new ScratchStoreAdapter
func NewScratchStoreAdapter(cfg *config.RuntimeConfig) *ScratchStoreAdapter {
	return &ScratchStoreAdapter{
		dir: filepath.Join(cfg.ProjectRoot, cfg.ScratchDir),
	}
}

// EnsureDir creates the scratch directory. An existing directory is not an error.
func (s *ScratchStoreAdapter) EnsureDir(_ context.Context) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return s.dir, nil
}

// Write stores content as name inside the scratch directory
func (s *ScratchStoreAdapter) Write(_ context.Context, name, content string) (*domain.StagedTestFile, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write staged file %s: %w", path, err)
	}
	return &domain.StagedTestFile{Path: path, Content: content}, nil
}

// Remove deletes a staged file
func (s *ScratchStoreAdapter) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove staged file %s: %w", path, err)
	}
	return nil
}

var _ usecase.ScratchStore = (*ScratchStoreAdapter)(nil)
