package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/surajcm/gqlpojo/internal/config"
	"github.com/surajcm/gqlpojo/internal/generate"
	"github.com/surajcm/gqlpojo/internal/watch"
)

type mockConfigLoader struct {
	mock.Mock
}

func (m *mockConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*config.Config), args.String(1), args.Error(2)
}

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, opts generate.Options) (*generate.Result, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generate.Result), args.Error(1)
}

type mockOutput struct {
	messages []string
}

func (m *mockOutput) Printf(format string, args ...any) {
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
}

func (m *mockOutput) Println(args ...any) {
	m.messages = append(m.messages, fmt.Sprintln(args...))
}

type mockSignalNotifier struct {
	mock.Mock
}

func (m *mockSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *mockSignalNotifier) Stop(c chan<- os.Signal) {
	m.Called(c)
}

type mockWatcher struct {
	mock.Mock
	onChange watch.ChangeFunc
}

func (m *mockWatcher) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockWatcher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type mockWatcherFactory struct {
	mock.Mock
	watcher *mockWatcher
}

func (m *mockWatcherFactory) NewWatcher(files []string, debounce time.Duration, onChange watch.ChangeFunc) (FileWatcher, error) {
	args := m.Called(files, debounce)
	if m.watcher != nil {
		m.watcher.onChange = onChange
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(FileWatcher), args.Error(1)
}
