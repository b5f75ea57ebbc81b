package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/threadfmt/internal/thread"
)

// Document is the JSON form of a formatted thread.
type Document struct {
	Title   string         `json:"title,omitempty"`
	Blocks  []thread.Block `json:"blocks"`
	Summary thread.Summary `json:"summary"`
	Text    string         `json:"text"`
}

// NewDocument builds the JSON document for t.
func NewDocument(t *thread.Thread) Document {
	blocks := t.Blocks
	if blocks == nil {
		blocks = []thread.Block{}
	}
	return Document{
		Title:   t.Title,
		Blocks:  blocks,
		Summary: thread.Summarize(t),
		Text:    thread.Render(t),
	}
}

// JSONWriter outputs the structured thread as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, t *thread.Thread) error {
	data, err := json.MarshalIndent(NewDocument(t), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
