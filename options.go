package devlog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/handler"
	"github.com/philipp01105/devlog/logger"
	"github.com/philipp01105/devlog/stacktrace"
)

// Param declares one parameter of a wrapped function. Go does not expose
// parameter names at run time, so templates and the name = value message
// shape rely on the names declared here, in order.
type Param struct {
	Name    string      `validate:"required,excludesall={}:"`
	Default interface{} `validate:"-"`
}

// Options is the configuration of a LoggingDecorator. It is copied when
// the decorator is built and never changes afterwards.
type Options struct {
	Level core.Level `validate:"gte=0,lte=5"`
	// Message is a template; empty selects the default message.
	Message string
	// ArgsKwargs selects the default message shape: args and kwargs when
	// true, "name = value" pairs when false.
	ArgsKwargs bool
	TraceStack bool
	// Logger receives the entries. When nil, the logger named after the
	// wrapped function's package is used.
	Logger *logger.Logger `validate:"-"`
	// Handler is attached once to the resolved logger.
	Handler handler.Handler `validate:"-"`
	Params  []Param         `validate:"unique=Name,dive"`
	// Stack holds the trim counts for trace blocks; nil reads the
	// process-wide settings at each call.
	Stack *stacktrace.Settings `validate:"-"`
}

// Option configures a decorator.
type Option func(*Options)

// WithMessage sets the message template. Placeholders are written
// {name} or {name:%verb}; {{ and }} produce literal braces.
func WithMessage(message string) Option {
	return func(o *Options) {
		o.Message = message
	}
}

// WithArgsKwargs selects the default message shape.
func WithArgsKwargs(enabled bool) Option {
	return func(o *Options) {
		o.ArgsKwargs = enabled
	}
}

// WithLogger sets an explicit logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHandler attaches h to the resolved logger.
func WithHandler(h handler.Handler) Option {
	return func(o *Options) {
		o.Handler = h
	}
}

// WithTraceStack enables the DEBUG stack trace block.
func WithTraceStack(enabled bool) Option {
	return func(o *Options) {
		o.TraceStack = enabled
	}
}

// WithLevel overrides the trigger's default level.
func WithLevel(level core.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithParams declares the wrapped function's parameters.
func WithParams(params ...Param) Option {
	return func(o *Options) {
		o.Params = append([]Param(nil), params...)
	}
}

// WithParamNames declares parameters without defaults.
func WithParamNames(names ...string) Option {
	return func(o *Options) {
		o.Params = make([]Param, len(names))
		for i, n := range names {
			o.Params[i] = Param{Name: n}
		}
	}
}

// WithStackSettings uses s instead of the process-wide stack settings.
func WithStackSettings(s *stacktrace.Settings) Option {
	return func(o *Options) {
		o.Stack = s
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateOptions(op string, o *Options) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(o); err != nil {
		return &ConfigError{Op: op, Err: fmt.Errorf("%w: %w", ErrInvalidConfig, err)}
	}
	return nil
}
