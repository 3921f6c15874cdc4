// Package watch drives gitrs's automatic "reload" on repository change.
// It is the one true filesystem collaborator beyond the VCS subprocess
// itself: watching .git directly lets gitrs notice a commit, checkout, or
// stage/unstage made from another terminal without the user pressing `R`.
//
// Grounded on RedClaus-cortex's fsnotify-based ShaderWatcher: a single
// watcher goroutine draining Events/Errors channels and forwarding a
// debounced signal to the consumer, generalized here from "reload a
// shader file" to "tell the UI thread a reload is due".
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Paths fsnotify cannot watch recursively, so gitrs watches the handful of
// entries that change on every meaningful repository operation rather than
// the whole tree (spec non-goal: gitrs does not track working-tree file
// content changes itself, only "a change happened").
var watchedEntries = []string{"HEAD", "index", "refs", "MERGE_HEAD", "ORIG_HEAD"}

// Watcher emits a debounced signal on Changes whenever .git's HEAD, index,
// or refs change.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan struct{}
	done    chan struct{}
}

// Start begins watching gitDir (the repository's .git directory). A
// failure to construct the underlying watcher is returned so the caller
// can proceed without auto-reload rather than treat it as fatal — losing
// the convenience of auto-reload is not a TERMINAL_IO condition.
func Start(gitDir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fs, Changes: make(chan struct{}, 1), done: make(chan struct{})}

	if err := fs.Add(gitDir); err != nil {
		_ = fs.Close()
		return nil, err
	}
	refsDir := filepath.Join(gitDir, "refs", "heads")
	_ = fs.Add(refsDir) // best-effort; branch refs may not exist yet (unborn HEAD)

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var pending *time.Timer
	const debounce = 150 * time.Millisecond

	for {
		select {
		case <-w.done:
			if pending != nil {
				pending.Stop()
			}
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, w.notify)
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	// Branch ref files under refs/heads carry the branch's own name.
	if filepath.Base(filepath.Dir(ev.Name)) == "heads" {
		return true
	}
	for _, entry := range watchedEntries {
		if name == entry {
			return true
		}
	}
	return false
}

func (w *Watcher) notify() {
	select {
	case w.Changes <- struct{}{}:
	default:
	}
}

// Close stops the watcher goroutine and releases the underlying fsnotify
// handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
