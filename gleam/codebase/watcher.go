package codebase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps a Codebase in sync with the filesystem using
// OS-native change notifications. Directories are watched recursively;
// new directories are picked up as they appear.
type FileWatcher struct {
	codebase *Codebase
	fs       *fsnotify.Watcher
	done     chan struct{}

	// OnUpdate, when set, is called after a file is reparsed or removed.
	OnUpdate func(path string)
}

func NewFileWatcher(c *Codebase) (*FileWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		codebase: c,
		fs:       fs,
		done:     make(chan struct{}),
	}, nil
}

// Start scans the codebase root and begins watching it.
func (w *FileWatcher) Start() error {
	if err := w.addDirs(w.codebase.RootDir()); err != nil {
		return err
	}
	w.codebase.ScanAll()
	go w.run()
	return nil
}

func (w *FileWatcher) Stop() {
	close(w.done)
	w.fs.Close()
}

func (w *FileWatcher) addDirs(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *FileWatcher) handle(ev fsnotify.Event) {
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			w.addDirs(ev.Name)
			return
		}
	}

	if filepath.Ext(ev.Name) != ".gleam" {
		return
	}

	switch {
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if err := w.codebase.ScanFile(ev.Name); err == nil {
			w.notify(ev.Name)
		}
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.codebase.RemoveFile(ev.Name)
		w.notify(ev.Name)
	}
}

func (w *FileWatcher) notify(path string) {
	if w.OnUpdate != nil {
		w.OnUpdate(path)
	}
}
