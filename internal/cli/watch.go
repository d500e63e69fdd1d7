package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"govctl/internal/config"
	"govctl/internal/envpath"
	"govctl/internal/statusbar"
	"govctl/internal/system"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-resolve the environment whenever the config file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Close()
		// Watch the directory: editors replace the file on save, which
		// drops a watch registered on the file itself.
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := w.Add(filepath.Dir(path)); err != nil {
			return err
		}

		ind := statusbar.Default()
		defer statusbar.DisposeDefault()
		u := envpath.New(ind, nil)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		cycle := func() {
			cfg, err := config.Load()
			if err != nil {
				system.Logger.Error("config load failed", "err", err)
				return
			}
			if _, err := u.Apply(ctx, cfg); err != nil {
				system.Logger.Error("update cycle failed", "err", err)
				return
			}
			system.Logger.Info("environment updated", "text", ind.Text(), "path0", envpath.First())
		}

		cycle()
		system.Logger.Info("watching config", "path", path)

		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					debounce = time.After(150 * time.Millisecond)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				system.Logger.Warn("watch error", "err", err)
			case <-debounce:
				debounce = nil
				cycle()
			}
		}
	},
}
