package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// RecursiveWatcher wraps fsnotify with recursive directory support.
// fsnotify is not recursive on Linux, so every subdirectory is added
// explicitly and new directories are picked up as they appear.
type RecursiveWatcher struct {
	*fsnotify.Watcher
	watched map[string]bool
	mu      sync.RWMutex
}

func New() (*RecursiveWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &RecursiveWatcher{
		Watcher: w,
		watched: make(map[string]bool),
	}, nil
}

// AddRecursive adds root and all its non-hidden subdirectories.
func (w *RecursiveWatcher) AddRecursive(root string) error {
	if _, err := os.Stat(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible directories
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return nil
		}
		w.mu.Lock()
		w.watched[path] = true
		w.mu.Unlock()
		return nil
	})
}

// HandleNewDirectory adds a newly created directory to the watcher.
// Returns true if a directory was added.
func (w *RecursiveWatcher) HandleNewDirectory(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return w.AddRecursive(event.Name) == nil
}

// IsWatched reports whether dir was added to the watcher.
func (w *RecursiveWatcher) IsWatched(dir string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.watched[dir]
}

// IsRecordFile checks if a file looks like an item record. Editor swap and
// hidden files are ignored.
func IsRecordFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.ToLower(filepath.Ext(base)) == ".json"
}
