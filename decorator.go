package devlog

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/logger"
	"github.com/philipp01105/devlog/stacktrace"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// diagnostics is where devlog reports its own failures, such as a
// handler error or a template that cannot be resolved at call time.
var diagnostics = sync.OnceValue(func() *logger.Logger {
	return logger.Get("devlog")
})

// LoggingDecorator wraps functions so that they log at one trigger
// point. One decorator may wrap any number of functions and is safe for
// concurrent use.
type LoggingDecorator struct {
	trigger Trigger
	opts    Options
	tmpl    *template
	// err is set when a deferred factory was given invalid options; it
	// is returned by Wrap.
	err error
}

// NewLoggingDecorator returns a decorator logging at trigger with the
// given level and message template. An empty message selects the
// default message. Options are applied after level and message.
func NewLoggingDecorator(trigger Trigger, level core.Level, message string, opts ...Option) (*LoggingDecorator, error) {
	const op = "NewLoggingDecorator"

	o := Options{Level: level, Message: message, ArgsKwargs: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if trigger > TriggerError {
		return nil, configErrorf(op, ErrInvalidConfig, "unknown trigger %d", trigger)
	}
	if err := validateOptions(op, &o); err != nil {
		return nil, err
	}

	d := &LoggingDecorator{trigger: trigger, opts: o}
	if o.Message != "" {
		t, err := parseTemplate(op, o.Message)
		if err != nil {
			return nil, err
		}
		d.tmpl = t
		if len(o.Params) > 0 {
			if err := t.check(op, d.knownNames(nil)); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// Trigger returns the decorator's trigger point.
func (d *LoggingDecorator) Trigger() Trigger {
	return d.trigger
}

// Options returns a copy of the decorator's configuration.
func (d *LoggingDecorator) Options() Options {
	o := d.opts
	o.Params = append([]Param(nil), d.opts.Params...)
	return o
}

// Err returns the configuration error held by a decorator built by
// OnStart, OnEnd or OnError, if any.
func (d *LoggingDecorator) Err() error {
	return d.err
}

// GetLogger returns the logger entries for fn are sent to: the explicit
// logger if one was configured, otherwise the registered logger named
// after fn's package, created if absent. A configured handler is
// attached to that logger unless it already is. GetLogger returns nil
// when no logger was configured and fn is not a function.
func (d *LoggingDecorator) GetLogger(fn interface{}) *logger.Logger {
	if d.opts.Logger != nil {
		return d.resolveLogger(funcInfo{})
	}
	info, err := inspect("GetLogger", reflect.ValueOf(fn))
	if err != nil {
		return nil
	}
	return d.resolveLogger(info)
}

func (d *LoggingDecorator) resolveLogger(info funcInfo) *logger.Logger {
	l := d.opts.Logger
	if l == nil {
		l = logger.Get(info.module)
	}
	if d.opts.Handler != nil {
		l.AddHandler(d.opts.Handler)
	}
	return l
}

// knownNames returns the placeholder names a template may use. With no
// declared parameters, a non-variadic t contributes arg0 ... argN-1.
func (d *LoggingDecorator) knownNames(t reflect.Type) func(string) bool {
	known := map[string]bool{}
	for _, p := range d.opts.Params {
		known[p.Name] = true
	}
	if len(d.opts.Params) == 0 && t != nil {
		for i := 0; i < t.NumIn(); i++ {
			known[positionalName(i)] = true
		}
	}
	if r := d.trigger.reserved(); r != "" {
		known[r] = true
	}
	return func(name string) bool { return known[name] }
}

func (d *LoggingDecorator) checkSignature(op string, t reflect.Type) error {
	if !t.IsVariadic() && len(d.opts.Params) > t.NumIn() {
		return configErrorf(op, ErrInvalidConfig, "%d params declared for %s", len(d.opts.Params), t)
	}
	if d.tmpl == nil || (len(d.opts.Params) == 0 && t.IsVariadic()) {
		return nil
	}
	return d.tmpl.check(op, d.knownNames(t))
}

// Wrap returns fn wrapped by d. The result has fn's type and returns
// whatever fn returns. Errors and panics from fn reach the caller
// unchanged.
func Wrap[F any](d *LoggingDecorator, fn F) (F, error) {
	const op = "Wrap"

	var zero F
	if d == nil {
		return zero, configErrorf(op, ErrInvalidConfig, "nil decorator")
	}
	if d.err != nil {
		return zero, d.err
	}

	v := reflect.ValueOf(fn)
	info, err := inspect(op, v)
	if err != nil {
		return zero, err
	}
	if err := d.checkSignature(op, v.Type()); err != nil {
		return zero, err
	}

	w := &wrapped{d: d, fn: v, typ: v.Type(), info: info}
	return reflect.MakeFunc(w.typ, w.invoke).Interface().(F), nil
}

// MustWrap is like Wrap but panics with a *ConfigError on failure.
func MustWrap[F any](d *LoggingDecorator, fn F) F {
	out, err := Wrap(d, fn)
	if err != nil {
		panic(err)
	}
	return out
}

// wrapped is the state behind one wrapped function.
type wrapped struct {
	d    *LoggingDecorator
	fn   reflect.Value
	typ  reflect.Type
	info funcInfo

	once sync.Once
	log  *logger.Logger
}

func (w *wrapped) resolved() *logger.Logger {
	w.once.Do(func() {
		w.log = w.d.resolveLogger(w.info)
	})
	return w.log
}

func (w *wrapped) invoke(in []reflect.Value) []reflect.Value {
	switch w.d.trigger {
	case TriggerStart:
		w.report(in, nil)
		return w.call(in)
	case TriggerEnd:
		out := w.call(in)
		if w.failure(out) == nil {
			w.report(in, w.result(out))
		}
		return out
	default:
		return w.invokeGuarded(in)
	}
}

func (w *wrapped) invokeGuarded(in []reflect.Value) (out []reflect.Value) {
	defer func() {
		if r := recover(); r != nil {
			w.report(in, panicFailure(r))
			panic(r)
		}
	}()

	out = w.call(in)
	if err := w.failure(out); err != nil {
		w.report(in, err)
	}
	return out
}

func (w *wrapped) call(in []reflect.Value) []reflect.Value {
	if w.typ.IsVariadic() {
		return w.fn.CallSlice(in)
	}
	return w.fn.Call(in)
}

// failure returns the non-nil error in fn's last result, if that result
// is declared as error.
func (w *wrapped) failure(out []reflect.Value) error {
	n := w.typ.NumOut()
	if n == 0 || w.typ.Out(n-1) != errorType || out[n-1].IsNil() {
		return nil
	}
	return out[n-1].Interface().(error)
}

// result returns fn's results without a trailing error: nil for none,
// the value for one, a slice for several.
func (w *wrapped) result(out []reflect.Value) interface{} {
	n := w.typ.NumOut()
	if n > 0 && w.typ.Out(n-1) == errorType {
		n--
	}
	switch n {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	vals := make([]interface{}, n)
	for i := range vals {
		vals[i] = out[i].Interface()
	}
	return vals
}

func panicFailure(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

// report emits the message and, if enabled, the trace block. It never
// panics.
func (w *wrapped) report(in []reflect.Value, extra interface{}) {
	fields := w.fields(extra)
	defer func() {
		if r := recover(); r != nil {
			diagnostics().Error(fmt.Sprintf("devlog: logging failed: %v", r), fields...)
		}
	}()

	const op = "call"
	opts := &w.d.opts
	l := w.resolved()
	trace := opts.TraceStack && l.Enabled(core.DebugLevel)
	if !l.Enabled(opts.Level) && !trace {
		return
	}

	call := newCallContext(w.typ, in, opts.Params)
	msg, err := resolveMessage(op, w.d.trigger, w.info.name, w.d.tmpl, opts.ArgsKwargs, call, opts.Params, extra)
	if err != nil {
		diagnostics().Error(err.Error(), fields...)
		msg, _ = resolveMessage(op, w.d.trigger, w.info.name, nil, opts.ArgsKwargs, call, opts.Params, extra)
	}
	w.emit(l, opts.Level, msg, fields)

	if !trace {
		return
	}
	stack := opts.Stack
	if stack == nil {
		stack = stacktrace.Default()
	}
	for _, line := range stack.Capture() {
		w.emit(l, core.DebugLevel, line, fields)
	}
	w.emit(l, core.DebugLevel, "End of the trace "+w.info.module+":"+w.info.name, fields)
}

func (w *wrapped) emit(l *logger.Logger, level core.Level, msg string, fields []core.Field) {
	if err := l.LogAt(level, w.info.caller, msg, fields...); err != nil {
		diagnostics().Warn("devlog: handler failed", append(fields[:len(fields):len(fields)], logger.Err(err))...)
	}
}

func (w *wrapped) fields(extra interface{}) []core.Field {
	fields := make([]core.Field, 0, 4)
	fields = append(fields,
		logger.String("function", w.info.name),
		logger.String("module", w.info.module),
		logger.String("trigger", w.d.trigger.String()),
	)
	if err, ok := extra.(error); ok && w.d.trigger == TriggerError {
		fields = append(fields, logger.Err(err))
	}
	return fields
}
