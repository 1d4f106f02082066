package react

import (
	"strings"

	"github.com/avisser/scout"
)

// Grammar markers. Matching is line-anchored and case-insensitive so a
// model writing "action:" or bolding a marker still parses.
const (
	markerThought     = "thought:"
	markerAction      = "action:"
	markerActionInput = "action input:"
	markerFinalAnswer = "final answer:"
)

// Parse classifies one unit of model output. A "Final Answer:" marker
// wins when present, even if the output also contains an Action; models
// that emit both have decided they are done. Otherwise an "Action:"
// line followed by an "Action Input:" line yields an ActionStep, and
// anything else is Malformed.
func Parse(raw string) scout.Step {
	lines := strings.Split(raw, "\n")

	if text, ok := capture(lines, markerFinalAnswer, nil); ok {
		return scout.FinalAnswerStep{Text: text}
	}

	action, okAction := capture(lines, markerAction, []string{markerActionInput, markerThought})
	input, okInput := capture(lines, markerActionInput, []string{markerAction, markerThought})
	if okAction && okInput && action != "" {
		thought, _ := capture(lines, markerThought, []string{markerAction, markerActionInput})
		return scout.ActionStep{
			Tool:    unquote(action),
			Input:   unquote(input),
			Thought: thought,
		}
	}

	return scout.MalformedStep{Raw: raw}
}

// capture finds the first line starting with marker and returns its
// value: the remainder of that line plus any following lines up to the
// next marker in stop. A nil stop means the value runs to the end of
// the output (the greedy Final Answer case).
func capture(lines []string, marker string, stop []string) (string, bool) {
	for i, line := range lines {
		first, ok := matchMarker(line, marker)
		if !ok {
			continue
		}
		value := []string{first}
		for _, next := range lines[i+1:] {
			if anyMarker(next, stop) {
				break
			}
			value = append(value, strings.TrimRight(next, " \t"))
		}
		return strings.TrimSpace(strings.Join(value, "\n")), true
	}
	return "", false
}

// matchMarker reports whether line begins with marker, ignoring case
// and leading whitespace or markdown decoration, and returns the
// remainder of the line. Requiring the marker at the start keeps prose
// like "my final answer: 42" from parsing while tolerating "**Action:**".
func matchMarker(line, marker string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t*_#>")
	if len(trimmed) < len(marker) || !strings.EqualFold(trimmed[:len(marker)], marker) {
		return "", false
	}
	rest := strings.Trim(trimmed[len(marker):], " \t*_")
	return rest, true
}

func anyMarker(line string, markers []string) bool {
	for _, m := range markers {
		if _, ok := matchMarker(line, m); ok {
			return true
		}
	}
	return false
}

// unquote strips one layer of surrounding quotes or backticks that
// models habitually wrap tool names and queries in.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{"`", `"`, "'"} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
