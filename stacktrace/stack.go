package stacktrace

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Frame is one captured stack frame.
type Frame struct {
	File     string
	Line     int
	Function string
	// Source is the trimmed text of the source line, empty when the file
	// could not be read.
	Source string
}

// String renders the frame on a single line:
//
//	/src/billing/charge.go:42 in github.com/acme/billing.Charge: total := a + b
func (f Frame) String() string {
	if f.Source == "" {
		return fmt.Sprintf("%s:%d in %s", f.File, f.Line, f.Function)
	}
	return fmt.Sprintf("%s:%d in %s: %s", f.File, f.Line, f.Function, f.Source)
}

// Capture renders the caller's stack, innermost frame first, with the
// given trim counts. Negative counts are treated as their magnitude.
func Capture(removal, start int) []string {
	return render(collect(abs(removal), abs(start)))
}

// Frames is like Capture but returns the frames unrendered.
func Frames(removal, start int) []Frame {
	return collect(abs(removal), abs(start))
}

var (
	ownPkg  = reflect.TypeOf(Frame{}).PkgPath()
	rootPkg = strings.TrimSuffix(ownPkg, "/stacktrace")
)

// collect returns the frames above its caller, innermost first, with
// internal frames and the trims removed.
func collect(removal, start int) []Frame {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(1, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}

	var frames []Frame
	iter := runtime.CallersFrames(pcs)
	for {
		f, more := iter.Next()
		frames = append(frames, Frame{File: f.File, Line: f.Line, Function: f.Function})
		if !more {
			break
		}
	}

	frames = frames[internalFrames(frames):]
	if removal+start >= len(frames) {
		return nil
	}
	frames = frames[removal : len(frames)-start]

	for i := range frames {
		frames[i].Source = sourceLine(frames[i].File, frames[i].Line)
	}
	return frames
}

// internalFrames returns how many leading frames belong to devlog or to
// the reflect trampoline a wrapped function is called through. After the
// first reflect frame, the next non-reflect frame is the caller of the
// wrapped function and ends the run, even if it lives in devlog.
//
// A capture taken while devlog recovers a panic sees runtime.gopanic
// and the panicking call below its own frames; those frames, up to the
// next devlog frame, are part of the run too.
func internalFrames(frames []Frame) int {
	cut, seenReflect := 0, false
	for i := 0; i < len(frames); i++ {
		f := frames[i].Function
		switch {
		case strings.HasPrefix(f, "reflect."):
			seenReflect = true
			cut = i + 1
		case !seenReflect && isOwn(f):
			cut = i + 1
		case !seenReflect && cut > 0 && f == "runtime.gopanic":
			next := nextOwn(frames, i+1)
			if next < 0 {
				return cut
			}
			i = next - 1
		default:
			return cut
		}
	}
	return cut
}

func nextOwn(frames []Frame, from int) int {
	for i := from; i < len(frames); i++ {
		if isOwn(frames[i].Function) {
			return i
		}
	}
	return -1
}

func isOwn(function string) bool {
	return strings.HasPrefix(function, ownPkg+".") || strings.HasPrefix(function, rootPkg+".")
}

func render(frames []Frame) []string {
	if len(frames) == 0 {
		return nil
	}
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.String()
	}
	return out
}

var sourceCache sync.Map // file -> []string

func sourceLine(file string, line int) string {
	v, ok := sourceCache.Load(file)
	if !ok {
		var lines []string
		if data, err := os.ReadFile(file); err == nil {
			lines = strings.Split(string(data), "\n")
		}
		v, _ = sourceCache.LoadOrStore(file, lines)
	}
	lines := v.([]string)
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}
