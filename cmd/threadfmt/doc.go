// Threadfmt reformats freeform text into a simulated bulletin-board thread.
//
// Comments separated by blank lines are numbered and signed with an
// anonymous name. A first line starting with "## " is kept as the title, and
// lines containing ＊ mark deleted posts: they are copied through and the
// next comment's number jumps forward by a random amount.
//
// Usage:
//
//	threadfmt format story.txt                 # format a file to stdout
//	threadfmt format < story.txt               # format stdin
//	threadfmt format --start 100 --name Anon   # override numbering and name
//	threadfmt format --seed 42 --copy          # reproducible jumps, copy result
//	threadfmt format --format json             # structured output
//	threadfmt config set jumpMax 500           # persist a default
package main
