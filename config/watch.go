package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk.
// Reloaded settings are sent on Settings, decode and watch failures on Errors.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filename string
	Settings chan Settings
	Errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching filename. The parent directory is watched so editors
// that replace the file on save are still seen.
func Watch(filename string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(filename)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		filename: filepath.Clean(filename),
		Settings: make(chan Settings, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes both channels
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Settings)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// reload once the file has been quiet for the debounce delay
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			settings, err := Load(w.filename)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendSettings(settings)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendSettings keeps only the newest settings when the consumer lags behind
func (w *Watcher) sendSettings(settings Settings) {
	for {
		select {
		case w.Settings <- settings:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Settings:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
