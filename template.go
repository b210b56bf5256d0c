package devlog

import (
	"fmt"
	"strings"
)

// segment is either literal text or a placeholder.
type segment struct {
	text string
	name string
	verb string
}

type template struct {
	segments []segment
}

// parseTemplate parses {name} and {name:%verb} placeholders. {{ and }}
// are literal braces.
func parseTemplate(op, src string) (*template, error) {
	t := &template{}
	var lit strings.Builder

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '{' && i+1 < len(src) && src[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(src) && src[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '}':
			return nil, configErrorf(op, ErrInvalidConfig, "unmatched '}' at offset %d in %q", i, src)
		case c == '{':
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				return nil, configErrorf(op, ErrInvalidConfig, "unclosed '{' at offset %d in %q", i, src)
			}
			seg, err := parsePlaceholder(op, src[i+1:i+end])
			if err != nil {
				return nil, err
			}
			if lit.Len() > 0 {
				t.segments = append(t.segments, segment{text: lit.String()})
				lit.Reset()
			}
			t.segments = append(t.segments, seg)
			i += end
		default:
			lit.WriteByte(c)
		}
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, segment{text: lit.String()})
	}
	return t, nil
}

func parsePlaceholder(op, body string) (segment, error) {
	name, verb, hasVerb := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "{") {
		return segment{}, configErrorf(op, ErrInvalidConfig, "malformed placeholder {%s}", body)
	}
	if hasVerb && (len(verb) < 2 || verb[0] != '%') {
		return segment{}, configErrorf(op, ErrInvalidConfig, "placeholder {%s}: verb must start with %%", body)
	}
	return segment{name: name, verb: verb}, nil
}

// names returns the placeholder names in order of appearance.
func (t *template) names() []string {
	var out []string
	for _, s := range t.segments {
		if s.name != "" {
			out = append(out, s.name)
		}
	}
	return out
}

// check reports the first placeholder for which known returns false.
func (t *template) check(op string, known func(string) bool) error {
	for _, n := range t.names() {
		if !known(n) {
			return configErrorf(op, ErrUnknownPlaceholder, "{%s}", n)
		}
	}
	return nil
}

func (t *template) execute(op string, values map[string]interface{}) (string, error) {
	var b strings.Builder
	for _, s := range t.segments {
		if s.name == "" {
			b.WriteString(s.text)
			continue
		}
		v, ok := values[s.name]
		if !ok {
			return "", configErrorf(op, ErrUnknownPlaceholder, "{%s}", s.name)
		}
		if s.verb != "" {
			fmt.Fprintf(&b, s.verb, v)
		} else {
			fmt.Fprint(&b, v)
		}
	}
	return b.String(), nil
}
