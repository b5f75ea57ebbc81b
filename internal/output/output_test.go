package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/threadfmt/internal/thread"
)

func buildThread(t *testing.T, input string) *thread.Thread {
	t.Helper()
	th, err := thread.Build(input, thread.Options{
		StartNumber:   1,
		AnonymousName: "Anon",
		JumpMin:       5,
		JumpMax:       5,
	}, thread.Fixed(5))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return th
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"markdown", false},
		{"sarif", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := GetWriter(tt.format, NoStyles())
		if (err != nil) != tt.wantErr {
			t.Errorf("GetWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestTextWriter_Plain(t *testing.T) {
	th := buildThread(t, "## Thread\nhello\n\nworld\n")

	var buf bytes.Buffer
	w := &TextWriter{Styles: NoStyles()}
	if err := w.Write(&buf, th); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := "## Thread\n1. Anon\nhello\n\n2. Anon\nworld\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextWriter_MatchesRender(t *testing.T) {
	th := buildThread(t, "a\n\n＊deleted＊\n\n\tb\n")

	var buf bytes.Buffer
	if err := (&TextWriter{Styles: NoStyles()}).Write(&buf, th); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != thread.Render(th)+"\n" {
		t.Errorf("text output %q differs from Render %q", buf.String(), thread.Render(th))
	}
}

func TestTextWriter_Colored(t *testing.T) {
	th := buildThread(t, "## T\nbody\n\n＊\n\nnext")

	var buf bytes.Buffer
	styles := NewStyles(&buf)
	if !styles.Enabled() {
		t.Fatal("NewStyles should be enabled")
	}
	if err := (&TextWriter{Styles: styles}).Write(&buf, th); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("colored output should contain ANSI escapes, got %q", out)
	}
	for _, s := range []string{"## T", "1. Anon", "body", "＊", "6. Anon", "next"} {
		if !strings.Contains(out, s) {
			t.Errorf("colored output missing %q", s)
		}
	}
	// Body lines are never styled.
	if !strings.Contains(out, "\nbody\n") {
		t.Errorf("body line should be written untouched, got %q", out)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestTextWriter_PropagatesError(t *testing.T) {
	th := buildThread(t, "a")
	if err := (&TextWriter{Styles: NoStyles()}).Write(failWriter{}, th); err == nil {
		t.Error("expected write error")
	}
}

func TestJSONWriter(t *testing.T) {
	th := buildThread(t, "## T\na\n\n＊\n\nb")

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, th); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Title != "## T" {
		t.Errorf("Title = %q, want %q", doc.Title, "## T")
	}
	if len(doc.Blocks) != 3 {
		t.Fatalf("Blocks len = %d, want 3", len(doc.Blocks))
	}
	if doc.Blocks[1].Kind != thread.KindMarker || doc.Blocks[1].Marker != "＊" {
		t.Errorf("Blocks[1] = %+v, want marker", doc.Blocks[1])
	}
	b := doc.Blocks[2].Post
	if b == nil || b.Number != 6 || !b.Jumped || b.Jump != 5 {
		t.Errorf("Blocks[2].Post = %+v, want jumped post 6", b)
	}
	if doc.Summary.Posts != 2 || doc.Summary.Markers != 1 || doc.Summary.Jumps != 1 {
		t.Errorf("Summary = %+v", doc.Summary)
	}
	if doc.Text != thread.Render(th) {
		t.Errorf("Text = %q, want %q", doc.Text, thread.Render(th))
	}
}

func TestJSONWriter_EmptyThread(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, &thread.Thread{}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), `"blocks": []`) {
		t.Errorf("empty thread should encode blocks as [], got %s", buf.String())
	}
}

func TestWriteThread_ToFile(t *testing.T) {
	th := buildThread(t, "a\n\nb")
	path := filepath.Join(t.TempDir(), "formatted_bulletin_board.txt")

	if err := WriteThread(th, "text", path, NoStyles()); err != nil {
		t.Fatalf("WriteThread error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "1. Anon\na\n\n2. Anon\nb\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestWriteThread_BadFormat(t *testing.T) {
	th := buildThread(t, "a")
	if err := WriteThread(th, "xml", "", NoStyles()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"always", false, true},
		{"never", true, false},
		{"auto", true, true},
		{"auto", false, false},
	}
	for _, tt := range tests {
		if got := UseColor(tt.mode, tt.tty); got != tt.want {
			t.Errorf("UseColor(%q, %v) = %v, want %v", tt.mode, tt.tty, got, tt.want)
		}
	}
}
