// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	FileWatcherLoggerPrefix = "watcher"
	watchEventBuffer        = 16
)

// WatchEvent is a change to a file in the watched directory. A renamed
// file is usually recreated under the same name by the next event.
type WatchEvent struct {
	Path    string
	Removed bool
	Renamed bool
}

// FileWatcher reports writes and removals of files in one directory.
type FileWatcher struct {
	log     *logger.L
	watcher *fsnotify.Watcher
	dir     string
	events  chan WatchEvent
	done    chan struct{}
}

func newFileWatcher(dir string, log *logger.L) (*FileWatcher, error) {
	dirPath, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return nil, fmt.Errorf("parse directory %s: %w", dir, err)
	}
	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return nil, errors.New("directory does not exist")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:     log,
		watcher: watcher,
		dir:     dirPath,
		events:  make(chan WatchEvent, watchEventBuffer),
		done:    make(chan struct{}),
	}, nil
}

func (w *FileWatcher) Events() <-chan WatchEvent {
	return w.events
}

func (w *FileWatcher) Start() error {
	err := w.watcher.Add(w.dir)
	if err != nil {
		w.log.Errorf("watcher add error: %v, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case <-w.done:
				return
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watch error: %s", err)
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				path, err := filepath.Abs(event.Name)
				if err != nil {
					path = event.Name
				}
				switch {
				case watcherEventFileRemove(event):
					w.send(WatchEvent{Path: path, Removed: true})
				case watcherEventFileRename(event):
					w.send(WatchEvent{Path: path, Renamed: true})
				case watcherEventFileChange(event):
					w.send(WatchEvent{Path: path})
				}
			}
		}
	}()

	return nil
}

func (w *FileWatcher) send(ev WatchEvent) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}

func (w *FileWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileRename(event fsnotify.Event) bool {
	return event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// replayOnChange reruns replay whenever the script, or a key file it has
// loaded, changes. It returns when ctx is done, the event stream closes or
// the script is removed. Renaming the script away, as editors do on save,
// waits for the file to come back. Replay failures are reported to out and do not
// stop the loop.
func replayOnChange(ctx context.Context, events <-chan WatchEvent, script string, keyCache *KeyFileCache, replay func() error, out io.Writer) error {
	log := logger.New(FileWatcherLoggerPrefix)
	script = cacheKey(script)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			path := cacheKey(ev.Path)
			if path == script && ev.Removed {
				log.Warnf("script %s removed, stop", script)
				return fmt.Errorf("script removed: %s", script)
			}

			_, loaded := keyCache.Get(path)
			keyCache.Invalidate(path)
			if ev.Removed || ev.Renamed || (path != script && !loaded) {
				continue
			}

			log.Infof("%s changed, replaying", path)
			fmt.Fprintf(out, "\n%s↻ %s changed, replaying %s%s\n", Yellow, filepath.Base(path), filepath.Base(script), Reset)
			if err := replay(); err != nil {
				fmt.Fprintf(out, "%sError:%s %s\n", Red, Reset, err)
			}
		}
	}
}
