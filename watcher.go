package mimekit

import (
	"github.com/fsnotify/fsnotify"
)

// typesWatcher reloads a resolver's extension table when its types file
// changes on disk.
type typesWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// newTypesWatcher starts watching path and calls reload after every
// write. Editors often replace files by rename, so remove and rename
// events re-add the watch before reloading.
func newTypesWatcher(path string, reload func()) (*typesWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	tw := &typesWatcher{
		watcher: w,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(tw.done)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					if w.Add(path) != nil {
						continue
					}
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					reload()
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return tw, nil
}

// Close stops the underlying watcher and waits for the event loop to
// drain.
func (tw *typesWatcher) Close() error {
	err := tw.watcher.Close()
	<-tw.done
	return err
}
