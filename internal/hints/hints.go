// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForNoHeading returns a hint for documents without any heading.
// The page title comes from the first heading, so one is required.
func ForNoHeading() string {
	return format("add a heading such as \"# Title\"; the first heading becomes the page title")
}

// ForStdinTerminal returns the hint printed when md2html waits on an interactive stdin.
func ForStdinTerminal() string {
	return format("reading Markdown from stdin; pass a file or pipe input (Ctrl-D ends input)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight style errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownExtension returns hints for unknown Markdown extension names.
func ForUnknownExtension(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("known extensions: " + strings.Join(known, ", "))
}

// ForTemplateNotFound returns a hint describing the asset directory layout.
func ForTemplateNotFound() string {
	return format("custom templates live in {asset-path}/templates/{name}.html")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
