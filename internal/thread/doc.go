// Package thread turns freeform text into a numbered bulletin-board thread.
//
// Input is split into lines. The first line starting with "## " becomes the
// thread title; the lines after it are grouped into comments separated by
// blank lines. Each comment is rendered under a "{number}. {name}" header and
// numbered sequentially from the configured start.
//
// A line containing the deleted-post marker "＊" is copied through verbatim
// and makes the next comment's number jump forward by a random amount drawn
// from [JumpMin, JumpMax], imitating posts that have gone missing. Several
// markers in a row still produce a single jump.
//
// [Format] returns the rendered text. [Build] returns the structured
// [Thread] so callers can render it another way, and [Render] turns a
// [Thread] back into text. Randomness comes from an injected [Rand] so
// results are reproducible under test.
package thread
