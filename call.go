package devlog

import (
	"reflect"
	"strconv"
)

// Kwarg is a named argument. Kwarg values passed in a wrapped function's
// variadic tail are reported as keyword arguments instead of positional
// ones, and bind to the declared parameter of the same name.
type Kwarg struct {
	Name  string
	Value interface{}
}

// KW returns a Kwarg.
func KW(name string, value interface{}) Kwarg {
	return Kwarg{Name: name, Value: value}
}

// CallContext holds the arguments of one call to a wrapped function.
type CallContext struct {
	// Args are the positional arguments, with the variadic tail flattened.
	Args []interface{}
	// Kwargs are the Kwarg values found in the variadic tail.
	Kwargs map[string]interface{}
	// Bound maps every declared parameter to its value: a keyword
	// argument of that name, else the positional argument at its index,
	// else its default. Keyword arguments naming no declared parameter
	// are bound under their own name. Without declared parameters the
	// positional arguments are bound as arg0, arg1 and so on.
	Bound map[string]interface{}
}

func newCallContext(t reflect.Type, in []reflect.Value, params []Param) CallContext {
	c := CallContext{
		Args:   make([]interface{}, 0, len(in)),
		Kwargs: map[string]interface{}{},
	}

	for i, v := range in {
		if t.IsVariadic() && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				c.addVariadic(v.Index(j).Interface())
			}
			continue
		}
		c.Args = append(c.Args, v.Interface())
	}

	c.Bound = make(map[string]interface{}, len(params)+len(c.Kwargs))
	if len(params) == 0 {
		for i, a := range c.Args {
			c.Bound[positionalName(i)] = a
		}
	}
	for i, p := range params {
		switch kv, ok := c.Kwargs[p.Name]; {
		case ok:
			c.Bound[p.Name] = kv
		case i < len(c.Args):
			c.Bound[p.Name] = c.Args[i]
		default:
			c.Bound[p.Name] = p.Default
		}
	}
	for k, v := range c.Kwargs {
		if _, ok := c.Bound[k]; !ok {
			c.Bound[k] = v
		}
	}
	return c
}

func (c *CallContext) addVariadic(v interface{}) {
	if kw, ok := v.(Kwarg); ok {
		c.Kwargs[kw.Name] = kw.Value
		return
	}
	c.Args = append(c.Args, v)
}

func positionalName(i int) string {
	return "arg" + strconv.Itoa(i)
}
