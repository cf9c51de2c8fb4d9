package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown formats markdown for the terminal. When the renderer
// cannot be built (no TTY, unknown terminal) the raw markdown is returned,
// it is written to stay readable.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
