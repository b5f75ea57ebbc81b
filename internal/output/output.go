package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/threadfmt/internal/thread"
)

// Writer writes a thread in a specific format.
type Writer interface {
	Write(w io.Writer, t *thread.Thread) error
}

// GetWriter returns a writer for the specified format. Styles only apply to text.
func GetWriter(format string, styles Styles) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Styles: styles}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteThread writes t to the specified output (file path or stdout).
func WriteThread(t *thread.Thread, format, outPath string, styles Styles) error {
	writer, err := GetWriter(format, styles)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, t)
}
