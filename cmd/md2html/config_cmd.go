package main

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML.
// Without --config it prints the defaults, a starting point for a config file.
func runConfig(args []string, flags *commonFlags, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: config takes no positional arguments", ErrTooManyArgs)
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
