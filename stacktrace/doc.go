// Package stacktrace renders the current goroutine's call stack as a
// bounded list of one-line frame descriptions.
//
// Frames belonging to devlog itself (and to the reflect trampoline that
// devlog's wrappers run behind) are always dropped first, so a capture
// taken inside a decorated call starts at the code that called the
// decorated function. Two further trims are then applied:
//
//   - removal frames: dropped from the inner end (nearest the capture),
//   - start frames: dropped from the outer end (runtime.goexit and such).
//
// Both counts live in a Settings value. The process-wide instance
// returned by Default is what decorators read unless they are given
// their own, and SetStackRemovalFrames / SetStackStartFrames mutate it.
// Settings are read at capture time, so changes apply to decorators
// created earlier as well.
package stacktrace
