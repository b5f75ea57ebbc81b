// Package output writes formatted threads for display or machine consumption.
//
// Three formats are supported:
//   - text: the rendered thread, exactly as produced by [thread.Render],
//     optionally colorized for terminals
//   - json: the structured thread with a summary and the rendered text
//   - markdown: one section per post, for pasting into wikis and PRs
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*thread.Thread]. [WriteThread]
// handles destination selection.
package output
