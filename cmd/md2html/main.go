package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks command-line parsing errors.
var ErrUsage = errors.New("invalid usage")

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
// Errors are printed to env.Stderr with a hint when one applies.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args, env)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "md2html: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// run dispatches args[1:] to a command. Arguments that do not start with a
// command name go to convert.
func run(ctx context.Context, args []string, env *Environment) error {
	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	cmd := "convert"
	if len(cmdArgs) > 0 && isCommand(cmdArgs[0]) {
		cmd, cmdArgs = cmdArgs[0], cmdArgs[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return nil

	case "help":
		runHelp(cmdArgs, env)
		return nil

	case "css":
		flags, rest, err := parseCSSFlags(cmdArgs, env.Stderr)
		if err != nil {
			return usageError(err)
		}
		return runCSS(rest, flags, env)

	case "config":
		flags, rest, err := parseConfigFlags(cmdArgs, env.Stderr)
		if err != nil {
			return usageError(err)
		}
		return runConfig(rest, flags, env)

	default:
		flags, rest, err := parseConvertFlags(cmdArgs, env.Stderr)
		if err != nil {
			return usageError(err)
		}
		return runConvert(ctx, rest, flags, env)
	}
}

func isCommand(name string) bool {
	switch name {
	case "convert", "css", "config", "version", "help":
		return true
	}
	return false
}

// usageError wraps a flag parsing error, leaving flag.ErrHelp intact.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrNoHeading):
		return hints.ForNoHeading()
	case errors.Is(err, md2html.ErrUnknownHighlightStyle):
		return hints.ForStyleNotFound(md2html.HighlightStyles())
	case errors.Is(err, md2html.ErrUnknownExtension):
		return hints.ForUnknownExtension(md2html.ExtensionNames())
	case errors.Is(err, md2html.ErrTemplateNotFound):
		return hints.ForTemplateNotFound()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
