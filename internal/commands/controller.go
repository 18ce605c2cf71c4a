// Package commands contains the CLI commands for the application
package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/surajcm/gqlpojo/internal/config"
)

// Flags holds the command-line values shared by the commands. Non-empty
// values override the project file.
type Flags struct {
	LogLevel   string
	ConfigPath string
	Schema     string
	Output     string
	Package    string
	Language   string
	Parser     string
	Scalars    []string // NAME=TYPE
	Workers    int
	Interfaces bool
	DryRun     bool
}

type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// ConfigLoader finds the project file. It returns the config and the
// directory its relative paths are resolved against.
type ConfigLoader interface {
	LoadConfig(path string) (*config.Config, string, error)
}

// Output is where commands print user-facing messages
type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// SignalNotifier wraps signal.Notify for testing
type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type defaultConfigLoader struct{}

// LoadConfig reads path when given; otherwise it searches the working
// directory and its parents. A missing project file yields the defaults
// rooted at the working directory.
func (l *defaultConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadConfigFromPath(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, dirOf(path), nil
	}

	cfg, dir, err := config.LoadConfig()
	if errors.Is(err, config.ErrConfigNotFound) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", wdErr)
		}
		return config.Default(), wd, nil
	}
	return cfg, dir, err
}

type defaultOutput struct{}

func (o *defaultOutput) Printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func (o *defaultOutput) Println(args ...any) {
	fmt.Fprintln(os.Stdout, args...)
}

type defaultSignalNotifier struct{}

func (n *defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n *defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
