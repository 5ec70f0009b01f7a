package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown pretty-prints markdown on the terminal. When rendering is not
// possible the raw markdown is printed instead, which keeps pipes usable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
