package secrets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileProvider loads secrets from individual files in a directory.
//
// Each secret is stored as a separate file named after the secret, the
// layout Kubernetes uses for mounted Secrets. Files must not be accessible
// to group or others.
//
// With watching enabled, any change in the directory drops the cache so a
// rotated secret is picked up on the next read.
type FileProvider struct {
	BasePath string // Directory containing secret files
	Watch    bool   // Enable file watching for auto-reload

	mu      sync.RWMutex
	cache   map[string]string
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	stopped sync.Once
}

// NewFileProvider creates a new file-based secret provider.
func NewFileProvider(basePath string, watch bool) (*FileProvider, error) {
	p := &FileProvider{
		BasePath: basePath,
		Watch:    watch,
		cache:    make(map[string]string),
		stopCh:   make(chan struct{}),
	}

	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat base path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base path is not a directory: %s", basePath)
	}

	if watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("failed to create file watcher: %w", err)
		}

		if err := watcher.Add(basePath); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch directory: %w", err)
		}

		p.watcher = watcher
		go p.watchLoop()
	}

	slog.Info("file-based secret provider started", "path", basePath, "watch", watch)

	return p, nil
}

// GetSecret reads the file <BasePath>/<name>, trimming surrounding
// whitespace. Values are cached until the next Refresh.
func (p *FileProvider) GetSecret(ctx context.Context, name string) (string, error) {
	p.mu.RLock()
	value, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return value, nil
	}

	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, "..") {
		return "", fmt.Errorf("invalid secret name %q", name)
	}
	path := filepath.Join(p.BasePath, name)

	// Stat follows the symlinks Kubernetes uses for atomic updates.
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("failed to stat secret file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("secret path is not a regular file: %s", name)
	}
	if mode := info.Mode().Perm(); mode&0o077 != 0 {
		return "", fmt.Errorf("insecure permissions on %s: %o (expected 0600 or 0400)", path, mode)
	}

	// #nosec G304 - name is a single path element inside BasePath
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file: %w", err)
	}
	value = strings.TrimSpace(string(data))

	p.mu.Lock()
	p.cache[name] = value
	p.mu.Unlock()

	return value, nil
}

// Provider returns the provider name.
func (p *FileProvider) Provider() string {
	return "file"
}

// Refresh clears the cache, forcing secrets to be re-read from files.
func (p *FileProvider) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cache = make(map[string]string)
	return nil
}

// Close stops the file watcher. It is safe to call more than once.
func (p *FileProvider) Close() error {
	if p.watcher == nil {
		return nil
	}
	var err error
	p.stopped.Do(func() {
		close(p.stopCh)
		err = p.watcher.Close()
	})
	return err
}

func (p *FileProvider) watchLoop() {
	for {
		select {
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Chmod) && !event.Op.Has(fsnotify.Write) {
				continue
			}

			slog.Debug("secret file changed, dropping cache",
				"file", filepath.Base(event.Name),
				"op", event.Op.String(),
			)
			_ = p.Refresh(context.Background())

		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("file watcher error", "error", err)

		case <-p.stopCh:
			return
		}
	}
}
