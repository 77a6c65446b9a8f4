package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

const defaultDebounce = 200 * time.Millisecond

// ContractWatcherAdapter reports changes to .clar files below a root directory
type ContractWatcherAdapter struct {
	log      *slog.Logger
	debounce time.Duration
}

// NewContractWatcherAdapter creates a new ContractWatcherAdapter
func NewContractWatcherAdapter(log *slog.Logger) *ContractWatcherAdapter {
	return &ContractWatcherAdapter{log: log.With("component", "ContractWatcher"), debounce: defaultDebounce}
}

// Watch blocks until ctx is done, calling onChange once per burst of edits.
// New directories are picked up as they appear.
func (w *ContractWatcherAdapter) Watch(ctx context.Context, root string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, root); err != nil {
		return err
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
		fired sync.WaitGroup
	)
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil && timer.Stop() {
			fired.Done()
		}
		fired.Add(1)
		timer = time.AfterFunc(w.debounce, func() {
			defer fired.Done()
			onChange()
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			fired.Done()
		}
		mu.Unlock()
		fired.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(watcher, event.Name)
					continue
				}
			}
			if strings.HasSuffix(event.Name, ".clar") && !strings.HasPrefix(filepath.Base(event.Name), "temp_test_") {
				w.log.Debug("contract changed", "file", event.Name, "op", event.Op.String())
				trigger()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

func (w *ContractWatcherAdapter) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

var _ usecase.ContractWatcher = (*ContractWatcherAdapter)(nil)
