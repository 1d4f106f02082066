package markdown

import (
	"strings"
	"unicode"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Wrap word-wraps plain (unstyled) text to fit within width terminal
// cells, measuring grapheme clusters rather than bytes. Words wider
// than the full width are placed on their own line unbroken.
func Wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}

	var (
		lines = []string{""}
		row   int
	)
	for _, word := range strings.FieldsFunc(s, unicode.IsSpace) {
		switch {
		case lines[row] == "":
			lines[row] = word
		case uniseg.StringWidth(lines[row])+1+uniseg.StringWidth(word) <= width:
			lines[row] += " " + word
		default:
			lines = append(lines, word)
			row++
		}
	}
	return lines
}

// Truncate cuts plain text to at most width terminal cells, appending
// an ellipsis when anything was removed.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	for g := uniseg.NewGraphemes(s); g.Next(); {
		cluster := g.Str()
		w := rw.StringWidth(cluster)
		if used+w > width-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + "…"
}
