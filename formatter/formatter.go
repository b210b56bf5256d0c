package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/devlog/core"
)

// Formatter renders an entry into bytes
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can write straight
// into a writer without returning an intermediate slice.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// OmitLogger drops the logger name from the output
	OmitLogger bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}

// render runs fn against a pooled buffer and returns a copy of its bytes.
func render(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// renderTo runs fn against a pooled buffer and writes the result to w.
func renderTo(entry *core.Entry, w io.Writer, fn func(*core.Entry, *bytes.Buffer)) error {
	buf := getBuffer()
	fn(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
