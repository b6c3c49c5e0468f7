// Package watcher reports debounced changes to content files on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/pubsub"
)

// eventBufferSize is the per-subscriber queue of debounced changes.
const eventBufferSize = 4

// Change is the payload published for every debounced burst of edits.
type Change struct {
	Paths []string
	Err   error
}

// Config holds watcher configuration options.
type Config struct {
	Paths       []string
	DebounceDur time.Duration
}

// DefaultConfig watches paths with a short debounce suited to editor saves.
func DefaultConfig(paths ...string) Config {
	return Config{
		Paths:       paths,
		DebounceDur: 200 * time.Millisecond,
	}
}

// Watcher publishes Change events on its broker when a watched file is
// written, created or removed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{}
	debounce  time.Duration
	broker    *pubsub.Broker[Change]
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// New creates a watcher. Nothing is observed until Start.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("watcher: no paths")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	files := make(map[string]struct{}, len(cfg.Paths))
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     files,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBrokerWithBuffer[Change](eventBufferSize),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker Change events are published on.
func (w *Watcher) Broker() *pubsub.Broker[Change] {
	return w.broker
}

// Start watches the directories holding the configured files. Directories
// are watched rather than files so editors that replace the file on save are
// still observed.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
		log.Debug(log.CatWatcher, "Watching directory", "dir", dir)
	}

	w.wg.Add(1)
	go w.loop()

	return nil
}

// Stop terminates the watcher, waits for its goroutine and closes the broker.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
		log.Debug(log.CatWatcher, "Watcher stopped",
			"subscribers", w.broker.SubscriberCount(),
			"dropped", w.broker.Dropped())
		w.broker.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]pubsub.EventType)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			kind, relevant := w.classify(event)
			if !relevant {
				continue
			}
			pending[event.Name] = kind

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.flush(pending)
			clear(pending)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watch error", err)
			w.broker.Publish(pubsub.FailedEvent, Change{Err: err})

		case <-w.done:
			return
		}
	}
}

// flush publishes one event for the burst. A burst where every file was
// removed is a RemovedEvent; anything else is a ChangedEvent.
func (w *Watcher) flush(pending map[string]pubsub.EventType) {
	if len(pending) == 0 {
		return
	}
	kind := pubsub.RemovedEvent
	paths := make([]string, 0, len(pending))
	for p, k := range pending {
		paths = append(paths, p)
		if k != pubsub.RemovedEvent {
			kind = pubsub.ChangedEvent
		}
	}
	slices.Sort(paths)

	log.Info(log.CatWatcher, "Content changed", "type", kind, "paths", paths)
	w.broker.Publish(kind, Change{Paths: paths})
}

func (w *Watcher) classify(event fsnotify.Event) (pubsub.EventType, bool) {
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		return "", false
	}
	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		return pubsub.ChangedEvent, true
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return pubsub.RemovedEvent, true
	default:
		return "", false
	}
}
