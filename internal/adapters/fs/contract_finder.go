package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

const maxConcurrentReads = 8

// ContractFinderAdapter discovers contract files with a doublestar pattern
type ContractFinderAdapter struct {
	pattern string
}

// NewContractFinderAdapter creates a new ContractFinderAdapter
func NewContractFinderAdapter(cfg *config.RuntimeConfig) *ContractFinderAdapter {
	pattern := cfg.ContractGlob
	if pattern == "" {
		pattern = "**/*.clar"
	}
	return &ContractFinderAdapter{pattern: pattern}
}

// FindContracts returns absolute paths of every file under root matching the pattern
func (a *ContractFinderAdapter) FindContracts(ctx context.Context, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(root), a.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to search for contracts in %s: %w", root, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadContracts reads all paths concurrently
func (a *ContractFinderAdapter) ReadContracts(ctx context.Context, paths []string) (map[string]string, error) {
	texts := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			text, err := a.ReadContract(ctx, path)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string]string, len(paths))
	for i, path := range paths {
		files[path] = texts[i]
	}
	return files, nil
}

// ReadContract reads the current text of path
func (a *ContractFinderAdapter) ReadContract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read contract %s: %w", path, err)
	}
	return string(data), nil
}

var _ usecase.ContractFinder = (*ContractFinderAdapter)(nil)
