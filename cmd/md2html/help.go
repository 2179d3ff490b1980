package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a Markdown document to an HTML page (default)")
	fmt.Fprintln(w, "  css        Print the stylesheet for a highlight style")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, arguments are passed to convert:")
	fmt.Fprintln(w, "  md2html README.md > README.html")
	fmt.Fprintln(w, "  cat README.md | md2html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown document to a standalone HTML page.")
	fmt.Fprintln(w, "The first heading becomes the page title; <!-- TOC --> becomes the")
	fmt.Fprintln(w, "table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file (default: stdin; \"-\" also reads stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --extensions <list>   Comma-separated extensions:")
	fmt.Fprintln(w, "                            toc, fenced-code-blocks, tables, code-friendly,")
	fmt.Fprintln(w, "                            strike, footnotes (\"\" = none)")
	fmt.Fprintln(w, "      --raw-html=false      Replace raw HTML with a comment")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stylesheets:")
	fmt.Fprintln(w, "      --cdn                 Link Primer from unpkg instead of primer.css")
	fmt.Fprintln(w, "      --page-css <href>     Page stylesheet href")
	fmt.Fprintln(w, "      --highlight-css <href> Code stylesheet href (default: pygments.css)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code with chroma classes")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (implies --highlight)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-owner <s>    Copyright holder")
	fmt.Fprintln(w, "      --footer-year <s>     Year: literal, \"auto\" or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --template <name>     Page template name (default: page)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding templates/<name>.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the class-based stylesheet matching --highlight output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <name>        Chroma style (default: monokai)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --list                List available styles")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "Config names are searched as <name>.yaml and <name>.yml in the current")
	fmt.Fprintln(w, "directory, then in the user config directory under go-md2html/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
