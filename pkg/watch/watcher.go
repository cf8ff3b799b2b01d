// Package watch monitors the model file for changes using fsnotify.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the watched model file changed on disk.
type Event struct {
	Path string    // Absolute path of the model file
	Time time.Time // When the change settled
}

// Watcher monitors a single model file. The containing directory is
// watched rather than the file itself so editors that write via
// rename-and-replace keep triggering events.
type Watcher struct {
	Path   string
	Events <-chan Event // Read-only external channel

	events  chan Event // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the model file at path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Event, 16)
	w := &Watcher{
		Path:    abs,
		Events:  ch,
		events:  ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the model file's directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.events)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors fire several events per save.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			pending = time.Now()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			select {
			case w.events <- Event{Path: w.Path, Time: time.Now()}:
			default:
				// Drop when the consumer is behind; the next save will
				// trigger another pass anyway.
			}
		}
	}
}

// relevant filters directory events down to writes touching the model
// file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Name != w.Path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
