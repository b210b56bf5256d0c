package logger

import (
	"os"
	"sort"
	"sync"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/formatter"
	"github.com/philipp01105/devlog/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex

	registryMu sync.Mutex
	registry   = map[string]*Logger{}
)

func init() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		MinLevel:  core.WarnLevel,
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.DebugLevel).
		Build()
}

// Default returns the fallback logger. Entries from a logger without
// handlers of its own are dispatched to the default logger's handlers,
// which initially print WARN and above to stderr.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the fallback logger. Passing nil silences loggers that
// have no handlers.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Get returns the registered logger with the given name, creating it
// with level InfoLevel and no handlers if absent. Repeated calls return
// the same *Logger.
func Get(name string) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()
	if l, ok := registry[name]; ok {
		return l
	}
	l := New(name)
	registry[name] = l
	return l
}

// Lookup returns the registered logger with the given name, if any.
func Lookup(name string) (*Logger, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	l, ok := registry[name]
	return l, ok
}

// Register makes l reachable through Get under its name, replacing any
// logger registered under the same name.
func Register(l *Logger) {
	registryMu.Lock()
	registry[l.Name()] = l
	registryMu.Unlock()
}

// Names returns the names of all registered loggers, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
