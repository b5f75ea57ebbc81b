package thread

import (
	"fmt"
	"strings"
)

// state is the accumulator threaded through the line fold. Each step
// consumes the previous value and returns the next one.
type state struct {
	blocks      []Block
	buffer      []string
	number      int
	jumpPending bool
}

// Format renders text as a bulletin-board thread.
//
// It fails only with ErrInvalidRange when opts.JumpMin > opts.JumpMax.
func Format(text string, opts Options, rnd Rand) (string, error) {
	t, err := Build(text, opts, rnd)
	if err != nil {
		return "", err
	}
	return Render(t), nil
}

// Build segments text into a title and numbered blocks without rendering.
func Build(text string, opts Options, rnd Rand) (*Thread, error) {
	if opts.JumpMin > opts.JumpMax {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, opts.JumpMin, opts.JumpMax)
	}
	if rnd == nil {
		rnd = DefaultRand()
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	t := &Thread{}

	start := 0
	for i, line := range lines {
		if strings.HasPrefix(line, TitlePrefix) {
			t.Title = line
			start = i + 1
			break
		}
	}

	s := state{number: opts.StartNumber}
	for _, line := range lines[start:] {
		s = s.step(line, opts, rnd)
	}
	s = s.flush(opts, rnd, true)

	t.Blocks = s.blocks
	if t.Blocks == nil {
		t.Blocks = []Block{}
	}
	return t, nil
}

func (s state) step(line string, opts Options, rnd Rand) state {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.Contains(trimmed, Marker):
		// The comment before a marker keeps its normal number.
		s = s.flush(opts, rnd, false)
		s.blocks = append(s.blocks, Block{Kind: KindMarker, Marker: line})
		s.jumpPending = true
	case trimmed == "":
		s = s.flush(opts, rnd, true)
	default:
		s.buffer = append(s.buffer, line)
	}
	return s
}

// flush turns the buffered lines into a post. With allowJump set, a pending
// jump replaces the +1 step for this post.
func (s state) flush(opts Options, rnd Rand, allowJump bool) state {
	if len(s.buffer) == 0 {
		return s
	}
	post := &Post{
		Number: s.number,
		Name:   opts.AnonymousName,
		Lines:  s.buffer,
	}
	if allowJump && s.jumpPending {
		jump := rnd.IntRange(opts.JumpMin, opts.JumpMax)
		post.Number = (s.number - 1) + jump
		post.Jump = jump
		post.Jumped = true
		s.jumpPending = false
	}
	s.blocks = append(s.blocks, Block{Kind: KindPost, Post: post})
	s.number = post.Number + 1
	s.buffer = nil
	return s
}

// LineRole tells what a rendered line is, so writers can style it.
type LineRole int

const (
	RoleTitle LineRole = iota
	RoleHeader
	RoleBody
	RoleMarker
	RoleSeparator
)

// Line is one rendered output line.
type Line struct {
	Role LineRole
	Text string
}

// RenderLines lays out t line by line: the title, then each block followed
// by a blank separator line. A post that ends the thread has no separator.
func RenderLines(t *Thread) []Line {
	var out []Line
	if t.Title != "" {
		out = append(out, Line{RoleTitle, t.Title})
	}
	for i, b := range t.Blocks {
		last := i == len(t.Blocks)-1
		switch b.Kind {
		case KindPost:
			if b.Post == nil {
				continue
			}
			out = append(out, Line{RoleHeader, b.Post.Header()})
			for _, l := range b.Post.Lines {
				out = append(out, Line{RoleBody, l})
			}
			if !last {
				out = append(out, Line{RoleSeparator, ""})
			}
		case KindMarker:
			out = append(out, Line{RoleMarker, b.Marker}, Line{RoleSeparator, ""})
		}
	}
	return out
}

// Render joins the lines of t with newlines.
func Render(t *Thread) string {
	lines := RenderLines(t)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}
