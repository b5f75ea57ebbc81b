package thread

import (
	"errors"
	"strconv"
)

const (
	// TitlePrefix marks the thread title line.
	TitlePrefix = "## "
	// Marker denotes a missing or deleted post.
	Marker = "＊"
)

// ErrInvalidRange is returned when JumpMin is greater than JumpMax.
var ErrInvalidRange = errors.New("invalid jump range")

// Options controls numbering and the poster name.
type Options struct {
	StartNumber   int    `json:"startNumber"`
	AnonymousName string `json:"anonymousName"`
	JumpMin       int    `json:"jumpMin"`
	JumpMax       int    `json:"jumpMax"`
}

// BlockKind identifies the kind of a thread block.
type BlockKind string

const (
	KindPost   BlockKind = "post"
	KindMarker BlockKind = "marker"
)

// Post is a numbered comment.
type Post struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Lines  []string `json:"lines"`
	// Jump is the random increment that replaced the usual +1 step when
	// Jumped is set.
	Jumped bool `json:"jumped,omitempty"`
	Jump   int  `json:"jump,omitempty"`
}

// Header returns the "{number}. {name}" line shown above the post body.
func (p Post) Header() string {
	return strconv.Itoa(p.Number) + ". " + p.Name
}

// Block is one element of the thread body: a post or a marker line.
type Block struct {
	Kind   BlockKind `json:"kind"`
	Post   *Post     `json:"post,omitempty"`
	Marker string    `json:"marker,omitempty"`
}

// Thread is the structured result of formatting.
type Thread struct {
	Title  string  `json:"title,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Posts returns the posts of the thread in order.
func (t *Thread) Posts() []Post {
	var posts []Post
	for _, b := range t.Blocks {
		if b.Kind == KindPost && b.Post != nil {
			posts = append(posts, *b.Post)
		}
	}
	return posts
}

// Summary holds counts describing a formatted thread.
type Summary struct {
	Posts   int `json:"posts"`
	Markers int `json:"markers"`
	Jumps   int `json:"jumps"`
	First   int `json:"first,omitempty"`
	Last    int `json:"last,omitempty"`
}

// Summarize computes a Summary for t.
func Summarize(t *Thread) Summary {
	var s Summary
	for _, b := range t.Blocks {
		switch b.Kind {
		case KindMarker:
			s.Markers++
		case KindPost:
			if b.Post == nil {
				continue
			}
			if s.Posts == 0 {
				s.First = b.Post.Number
			}
			s.Posts++
			s.Last = b.Post.Number
			if b.Post.Jumped {
				s.Jumps++
			}
		}
	}
	return s
}
