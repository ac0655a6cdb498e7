// Package watch recompiles a manuscript tree when its Markdown files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Change is delivered after each reload that produced a new corpus, or
// failed.
type Change struct {
	Corpus      manuscript.Corpus
	Stats       *manuscript.LoadStats
	Fingerprint string
	Err         error
}

// Watcher watches a manuscript root. A directory root is watched
// recursively, skipping hidden directories; a file root watches that file.
type Watcher struct {
	root     string
	file     string // base name when root is a single file
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New creates a watcher for root. Close must be called to release it.
func New(root string, debounce time.Duration) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", manuscript.ErrNotFound, root)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{root: root, debounce: debounce, fsw: fsw}
	if info.IsDir() {
		err = w.addTree(root)
	} else {
		w.file = filepath.Base(root)
		err = fsw.Add(filepath.Dir(root))
	}
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// addTree watches dir and every non-hidden directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, as the loader does
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run loads the corpus, reports it, then reports every later reload whose
// fingerprint differs from the previous one. It returns nil when ctx is
// cancelled and an error if the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context, fn func(Change)) error {
	last := w.reload(fn, "")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.isDirCreate(event) {
				_ = w.addTree(event.Name)
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.root, err)

		case <-timer.C:
			last = w.reload(fn, last)
		}
	}
}

// reload loads the corpus and calls fn when the fingerprint changed or the
// load failed. It returns the fingerprint to compare the next load against.
func (w *Watcher) reload(fn func(Change), last string) string {
	corpus, stats, err := manuscript.Load(w.root)
	if err != nil {
		fn(Change{Err: err})
		return ""
	}
	fingerprint := corpus.Fingerprint()
	if fingerprint == last {
		return last
	}
	fn(Change{Corpus: corpus, Stats: stats, Fingerprint: fingerprint})
	return fingerprint
}

func (w *Watcher) isDirCreate(event fsnotify.Event) bool {
	if w.file != "" || !event.Has(fsnotify.Create) {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir() && !strings.HasPrefix(filepath.Base(event.Name), ".")
}

// relevant reports whether an event can change the corpus.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	return Relevant(event, w.file)
}

// Relevant reports whether event can change a corpus. When file is set only
// events for that base name count; otherwise any Markdown file counts, as do
// directory creations, removals and renames.
func Relevant(event fsnotify.Event, file string) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if file != "" {
		return name == file
	}
	if filepath.Ext(name) == manuscript.MarkdownExt {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	// A removed or renamed directory no longer exists to stat; an extensionless
	// name is treated as a possible directory.
	return filepath.Ext(name) == "" && event.Has(fsnotify.Create|fsnotify.Remove|fsnotify.Rename)
}
