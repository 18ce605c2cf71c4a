package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/surajcm/gqlpojo/internal/config"
	"github.com/surajcm/gqlpojo/internal/watch"
)

// FileWatcher runs until ctx is done, calling onChange after each burst of changes
type FileWatcher interface {
	Run(ctx context.Context) error
	Close() error
}

// WatcherFactory creates file watchers
type WatcherFactory interface {
	NewWatcher(files []string, debounce time.Duration, onChange watch.ChangeFunc) (FileWatcher, error)
}

type defaultWatcherFactory struct {
	logger zerolog.Logger
}

func (f *defaultWatcherFactory) NewWatcher(files []string, debounce time.Duration, onChange watch.ChangeFunc) (FileWatcher, error) {
	w, err := watch.New(files, debounce, f.logger, onChange)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// WatchDependencies for the watch command
type WatchDependencies struct {
	ConfigLoader   ConfigLoader
	Runner         Runner
	WatcherFactory WatcherFactory
	SignalNotifier SignalNotifier
	Output         Output
}

// WatchCommand regenerates whenever the schema or project file changes
type WatchCommand struct {
	flags *Flags
	deps  WatchDependencies
}

// NewWatchCommand creates a watch command with default dependencies
func NewWatchCommand(flags *Flags, logger zerolog.Logger) *WatchCommand {
	gen := NewGenerateCommand(flags, logger)
	return &WatchCommand{
		flags: flags,
		deps: WatchDependencies{
			ConfigLoader:   gen.deps.ConfigLoader,
			Runner:         gen.deps.Runner,
			WatcherFactory: &defaultWatcherFactory{logger: logger},
			SignalNotifier: &defaultSignalNotifier{},
			Output:         gen.deps.Output,
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (wc *WatchCommand) WithDependencies(deps WatchDependencies) *WatchCommand {
	wc.deps = deps
	return wc
}

// Execute runs an initial generation and then watches for changes
func (wc *WatchCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := wc.deps.ConfigLoader.LoadConfig(wc.configPath())
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	_, merged, err := resolveOptions(cfg, projectRoot, wc.flags)
	if err != nil {
		return err
	}
	debounce, err := merged.DebounceDuration()
	if err != nil {
		return err
	}

	gen := &GenerateCommand{flags: wc.flags, deps: GenerateDependencies{
		ConfigLoader: wc.deps.ConfigLoader,
		Runner:       wc.deps.Runner,
		Output:       wc.deps.Output,
	}}

	wc.deps.Output.Printf("👀 Watching %s\n", merged.Schema)
	if err := gen.Execute(ctx); err != nil {
		// Keep watching so the user can fix the schema
		wc.deps.Output.Printf("❌ %v\n", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	wc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer wc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			wc.deps.Output.Println("\n👋 Stopping watch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	files := append([]string{merged.Schema}, projectFiles(projectRoot, wc.configPath())...)
	watcher, err := wc.deps.WatcherFactory.NewWatcher(files, debounce, func(ctx context.Context) error {
		if err := gen.Execute(ctx); err != nil {
			wc.deps.Output.Printf("❌ %v\n", err)
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

func (wc *WatchCommand) configPath() string {
	if wc.flags == nil {
		return ""
	}
	return wc.flags.ConfigPath
}

// projectFiles lists the project files that exist for dir, or the explicit path
func projectFiles(dir, explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	var files []string
	for _, name := range config.FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files
}

// Watch runs the watch command
func (c *Controller) Watch(ctx context.Context) error {
	return NewWatchCommand(c.Flags, c.Logger).Execute(ctx)
}
