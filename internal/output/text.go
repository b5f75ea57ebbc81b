package output

import (
	"fmt"
	"io"

	"github.com/dshills/threadfmt/internal/thread"
)

// TextWriter outputs the rendered thread followed by a newline.
type TextWriter struct {
	Styles Styles
}

func (tw *TextWriter) Write(w io.Writer, t *thread.Thread) error {
	ew := &errWriter{w: w}
	for i, line := range thread.RenderLines(t) {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s", tw.Styles.line(line))
	}
	ew.printf("\n")
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
