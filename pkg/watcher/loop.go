package watcher

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Handler is called once per changed record after the debounce interval.
type Handler func(path string)

// Run dispatches write and create events for record files to handle. Events
// for the same file within debounce of each other are coalesced. Run returns
// when ctx is cancelled or the watcher is closed.
func Run(ctx context.Context, w *RecursiveWatcher, logger *logrus.Logger, debounce time.Duration, handle Handler) error {
	var mu sync.Mutex
	pending := make(map[string]bool)
	var timer *time.Timer

	processPending := func() {
		mu.Lock()
		toProcess := pending
		pending = make(map[string]bool)
		mu.Unlock()

		paths := make([]string, 0, len(toProcess))
		for path := range toProcess {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			handle(path)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if w.HandleNewDirectory(event) {
				logger.Debugf("Watching new directory %s", event.Name)
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !IsRecordFile(event.Name) {
				continue
			}

			mu.Lock()
			pending[event.Name] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, processPending)
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Error("Watcher error")
		}
	}
}
