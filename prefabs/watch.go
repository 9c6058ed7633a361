package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileKind classifies a watched file by what reloading it affects.
type FileKind int

const (
	FileOther FileKind = iota
	FileSpec
	FileScript
	FileLevel
)

func (k FileKind) String() string {
	switch k {
	case FileSpec:
		return "spec"
	case FileScript:
		return "script"
	case FileLevel:
		return "level"
	default:
		return "other"
	}
}

// KindOf classifies path by extension.
func KindOf(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FileSpec
	case ".tengo":
		return FileScript
	case ".json":
		return FileLevel
	default:
		return FileOther
	}
}

// Change is one reloadable file that was written, created, renamed or
// removed.
type Change struct {
	Path string
	Kind FileKind
}

// debounce collapses editor save bursts on the same file.
const debounce = 100 * time.Millisecond

// Watcher reports changes to tuning, script and level files. Both channels
// are closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
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
	defer close(w.Changes)
	defer close(w.Errors)

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			kind := KindOf(event.Name)
			if event.Op&relevant == 0 || kind == FileOther {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changes <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Drop errors nobody is reading.
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
