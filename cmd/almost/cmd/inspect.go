package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/go-drift/almost/cmd/almost/internal/config"
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print the resolved node tree as JSON",
		Long: `Print the resolved visual node tree of a demo as indented JSON.

Flags:
  --demo NAME    Demo to inspect (default: app.demo, then "hello")`,
		Usage: "almost inspect [--demo NAME]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	var demo string
	for i := 0; i < len(args); i++ {
		v, ok, err := flagValue(args, &i, "--demo")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown flag %q", args[i])
		}
		demo = v
	}

	if demo == "" {
		// almost.yaml is optional for inspect; fall back to the default demo
		// outside a module.
		if root, err := config.FindProjectRoot(); err == nil {
			cfg, err := config.Resolve(root)
			if err != nil {
				return configError("config.Resolve", err)
			}
			demo = cfg.Demo
		}
	}
	return inspect(os.Stdout, demo)
}

func inspect(w io.Writer, name string) error {
	demo, err := showcase.Lookup(name)
	if err != nil {
		return err
	}
	node, err := core.Resolve(demo.Builder())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
