package filewatch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange for each change (write, create, remove, rename or chmod)
// under target paths until ctx is done.
//
// Directories are watched recursively, including ones created while watching.
//
// # Args
//
// - ctx: context.Context. Watching stops when it is done.
//
// - onChange: called with each event. Calls are serialized.
//
// - targetPath ...string: files or directories to be watched.
//
// # Returns
//
// - error: error caused when it fails to start watching.
func Watch(ctx context.Context, onChange func(fsnotify.Event), targetPath ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, p := range targetPath {
		if err := addRecursive(w, p); err != nil {
			w.Close()
			return err
		}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) {
					// files are reported by the watch of their directory.
					// ignore errors; it may be already gone.
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						addRecursive(w, event.Name)
					}
				}
				onChange(event)
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == root {
			return w.Add(p)
		}
		return nil
	})
}

// UntilModifyContext returns a context that is canceled
// when one of target files is modified.
//
// The cause of the cancellation (context.Cause) tells which file is modified.
//
// If error is not nil, both of the the context and the cancel function are nil.
func UntilModifyContext(ctx context.Context, targetFilePath ...string) (context.Context, func(), error) {
	cctx, cancel := context.WithCancelCause(ctx)

	err := Watch(cctx, func(event fsnotify.Event) {
		cancel(fmt.Errorf("%s is updated (%s)", event.Name, event.Op.String()))
	}, targetFilePath...)
	if err != nil {
		cancel(err)
		return nil, nil, err
	}
	return cctx, func() { cancel(nil) }, nil
}
