// Package markdown renders markdown text and agent answers to
// ANSI-styled terminal output using goldmark for parsing and lipgloss
// for styling.
package markdown

import (
	"fmt"
	"strings"

	"github.com/avisser/scout"
)

// Render parses markdown source and returns ANSI-styled terminal
// output. Paragraphs and list items are word-wrapped to width. Code
// blocks are rendered at full width without reflow.
func Render(source string, width int, theme scout.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// RenderAnswer renders the answer text as markdown and appends a
// numbered sources section when the answer cites any.
func RenderAnswer(answer scout.Answer, width int, theme scout.Theme) string {
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)

	var out strings.Builder
	out.WriteString(r.render([]byte(answer.Text), width))

	if len(answer.Sources) > 0 {
		out.WriteString("\n\n")
		out.WriteString(r.accent.Render("Sources"))
		out.WriteString("\n")
		for i, src := range answer.Sources {
			title := src.Title
			if title == "" {
				title = src.URL
			}
			out.WriteString(r.bold.Render(fmt.Sprintf("%d. %s", i+1, Truncate(title, width-5))))
			out.WriteString("\n   ")
			out.WriteString(r.muted.Render(Truncate(src.URL, width-3)))
			if i < len(answer.Sources)-1 {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
