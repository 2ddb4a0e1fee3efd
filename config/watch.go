package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lone-faerie/unitconv/log"
)

// Watch reloads the config from the given paths each time one of them is
// written and calls fn with the result, until ctx is done. Directories are
// watched for changes to any yaml file they contain. Errors while reloading
// are logged and the previous config is kept.
func Watch(ctx context.Context, fn func(*Config), path ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var (
		files = make(map[string]bool)
		dirs  = make(map[string]bool)
	)
	for _, p := range path {
		p = filepath.Clean(p)
		fi, err := os.Stat(p)
		if err != nil {
			return err
		}
		dir := p
		if fi.IsDir() {
			dirs[p] = true
		} else {
			// Watch the parent so that files replaced by rename are still seen.
			dir = filepath.Dir(p)
			files[p] = true
		}
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	changed := func(name string) bool {
		name = filepath.Clean(name)
		return files[name] || (dirs[filepath.Dir(name)] && isYAML(name))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !changed(ev.Name) {
				continue
			}
			log.Debug("Config changed", "path", ev.Name, "op", ev.Op.String())
			cfg, err := Load(path...)
			if err != nil {
				log.Warn("Unable to reload config", "path", ev.Name, "cause", err)
				continue
			}
			log.Info("Config reloaded", "path", ev.Name)
			fn(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Config watcher error", "cause", err)
		}
	}
}
