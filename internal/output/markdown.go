package output

import (
	"io"
	"strings"

	"github.com/dshills/threadfmt/internal/thread"
)

// MarkdownWriter outputs the thread as markdown, one section per post.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, t *thread.Thread) error {
	ew := &errWriter{w: w}

	if t.Title != "" {
		ew.printf("%s\n\n", t.Title)
	}

	for i, b := range t.Blocks {
		if i > 0 {
			ew.printf("---\n\n")
		}
		switch b.Kind {
		case thread.KindPost:
			if b.Post == nil {
				continue
			}
			ew.printf("**%s**\n\n", b.Post.Header())
			// Two trailing spaces keep the post's own line breaks.
			ew.printf("%s\n\n", strings.Join(escapeLines(b.Post.Lines), "  \n"))
		case thread.KindMarker:
			ew.printf("> *%s*\n\n", strings.TrimSpace(b.Marker))
		}
	}

	s := thread.Summarize(t)
	ew.printf("*%d posts, %d deleted-post markers*\n", s.Posts, s.Markers)
	return ew.err
}

// escapeLines stops body text from being read as headings, lists or quotes.
func escapeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed != "" && strings.ContainsRune("#>-+*", rune(trimmed[0])) {
			l = l[:len(l)-len(trimmed)] + `\` + trimmed
		}
		out[i] = l
	}
	return out
}
