package host

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch loads module files dropped into the plugin directory while the
// host is running, so an operator can add a plugin without a restart.
// It blocks until ctx is canceled. Rejections are classified and
// logged the same way the initial scan does.
func (r *Registry) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return err
	}
	r.logger.Info("watching plugin directory", zap.String("dir", r.dir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			_, _ = r.LoadPlugin(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("plugin directory watch error", zap.Error(err))
		}
	}
}
