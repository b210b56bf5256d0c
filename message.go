package devlog

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Trigger is the point of a wrapped call at which a decorator logs.
type Trigger uint8

const (
	// TriggerStart logs before the call.
	TriggerStart Trigger = iota
	// TriggerEnd logs after a successful call.
	TriggerEnd
	// TriggerError logs when the call fails.
	TriggerError
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerEnd:
		return "end"
	case TriggerError:
		return "error"
	default:
		return "unknown"
	}
}

func (t Trigger) verb() string {
	switch t {
	case TriggerEnd:
		return "Successfully run"
	case TriggerError:
		return "Error in"
	default:
		return "Start"
	}
}

// reserved returns the placeholder this trigger provides besides the
// bound parameters.
func (t Trigger) reserved() string {
	switch t {
	case TriggerEnd:
		return "result"
	case TriggerError:
		return "error"
	default:
		return ""
	}
}

// resolveMessage builds the message for one call. extra is the call's
// result for TriggerEnd and its failure for TriggerError.
func resolveMessage(op string, t Trigger, name string, tmpl *template, argsKwargs bool, call CallContext, params []Param, extra interface{}) (string, error) {
	if tmpl != nil {
		values := call.Bound
		if r := t.reserved(); r != "" {
			if _, shadowed := values[r]; !shadowed {
				values = make(map[string]interface{}, len(call.Bound)+1)
				for k, v := range call.Bound {
					values[k] = v
				}
				values[r] = extra
			}
		}
		return tmpl.execute(op, values)
	}

	var b strings.Builder
	b.WriteString(t.verb())
	b.WriteString(" func ")
	b.WriteString(name)
	if argsKwargs {
		b.WriteString(" with args ")
		writeArgs(&b, call.Args)
		b.WriteString(", kwargs ")
		writeKwargs(&b, call.Kwargs)
	} else {
		writeBound(&b, call, params)
	}
	if t == TriggerError && extra != nil {
		fmt.Fprintf(&b, ": %v", extra)
	}
	return b.String(), nil
}

func writeArgs(b *strings.Builder, args []interface{}) {
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(repr(a))
	}
	b.WriteByte(')')
}

func writeKwargs(b *strings.Builder, kwargs map[string]interface{}) {
	b.WriteByte('{')
	for i, k := range sortedKeys(kwargs) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(repr(kwargs[k]))
	}
	b.WriteByte('}')
}

// writeBound writes " with p1 = v1, p2 = v2" in declared order, followed
// by any extra keyword arguments in sorted order.
func writeBound(b *strings.Builder, call CallContext, params []Param) {
	names := make([]string, 0, len(call.Bound))
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		names = append(names, p.Name)
		seen[p.Name] = true
	}
	if len(params) == 0 {
		for i := range call.Args {
			n := positionalName(i)
			names = append(names, n)
			seen[n] = true
		}
	}
	for _, k := range sortedKeys(call.Kwargs) {
		if !seen[k] {
			names = append(names, k)
		}
	}
	if len(names) == 0 {
		return
	}

	b.WriteString(" with ")
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s = %v", n, call.Bound[n])
	}
}

// repr renders a value the way it is shown in the default message:
// numbers and booleans plainly, nil as <nil>, everything else in Go
// syntax.
func repr(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
