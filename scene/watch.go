package scene

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before its change is reported.
const debounce = 100 * time.Millisecond

// Watcher reports sprite image files that changed on disk. Paths arrive on
// Events once writes to them have settled; the editor drains them from its
// update loop so the store is only touched from one goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	mu   sync.Mutex
	dirs map[string]bool
}

func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		dirs:    make(map[string]bool),
	}
	go watcher.run()
	return watcher, nil
}

// WatchFile starts watching the directory containing path. Watching the same
// directory twice is a no-op.
func (w *Watcher) WatchFile(path string) error {
	dir := filepath.Dir(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dirs[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = true
	return nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsImageFile(event.Name) {
				continue
			}
			path := filepath.Clean(event.Name)
			if t, ok := timers[path]; ok {
				t.Reset(debounce)
				continue
			}
			timers[path] = time.AfterFunc(debounce, func() { w.emit(path) })
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) emit(path string) {
	select {
	case w.Events <- path:
	case <-w.closeCh:
	}
}
