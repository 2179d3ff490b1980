package main

import (
	"bytes"
	"fmt"

	md2html "github.com/alnah/go-md2html"
)

// runCSS writes the class-based stylesheet for a highlight style, or lists styles.
func runCSS(args []string, flags *cssFlags, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: css takes no positional arguments", ErrTooManyArgs)
	}

	if flags.list {
		for _, name := range md2html.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	style := flags.style
	if style == "" {
		style = md2html.DefaultHighlightStyle
	}

	var buf bytes.Buffer
	if err := md2html.WriteHighlightCSS(&buf, style); err != nil {
		return err
	}
	return writeOutput(flags.output, buf.Bytes(), env)
}
