package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-drift/almost/cmd/almost/internal/config"
	"github.com/go-drift/almost/pkg/app"
	"github.com/go-drift/almost/pkg/dom"
	"github.com/go-drift/almost/pkg/errors"
	"github.com/go-drift/almost/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a demo to an HTML document",
		Long: `Render a showcase demo to an HTML document.

The demo's root widget is resolved into visual nodes, materialized once and
attached to the page body, or to the element named by output.container in
almost.yaml when a template is configured. The default stylesheet plus any
theme.rules from almost.yaml is injected into the page head.

Flags:
  --demo NAME    Demo to render (default: app.demo, then "hello")
  --out FILE     Output file (default: output.path, then build/index.html)
  --verbose      Report errors with stack traces`,
		Usage: "almost render [--demo NAME] [--out FILE] [--verbose]",
		Run:   runRender,
	})
}

type renderOptions struct {
	demo    string
	out     string
	verbose bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "--verbose" {
			opts.verbose = true
			continue
		}
		if v, ok, err := flagValue(args, &i, "--demo"); ok {
			if err != nil {
				return opts, err
			}
			opts.demo = v
			continue
		}
		if v, ok, err := flagValue(args, &i, "--out"); ok {
			if err != nil {
				return opts, err
			}
			opts.out = v
			continue
		}
		return opts, fmt.Errorf("unknown flag %q", args[i])
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		errors.SetHandler(&errors.LogHandler{Verbose: true})
		defer errors.SetHandler(nil)
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return configError("config.FindProjectRoot", err)
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return configError("config.Resolve", err)
	}
	if opts.demo != "" {
		cfg.Demo = opts.demo
	}
	if opts.out != "" {
		cfg.OutputPath, err = filepath.Abs(opts.out)
		if err != nil {
			return err
		}
	}

	doc, err := renderDocument(cfg)
	if err != nil {
		return err
	}
	if err := writeDocument(doc, cfg.OutputPath); err != nil {
		return err
	}
	log.Printf("rendered %q to %s", cfg.Demo, cfg.OutputPath)
	return nil
}

// renderDocument builds the configured demo into a fresh or template page.
func renderDocument(cfg *config.Resolved) (*dom.Document, error) {
	demo, err := showcase.Lookup(cfg.Demo)
	if err != nil {
		return nil, err
	}

	doc, err := loadDocument(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	if cfg.Title != "" {
		doc.SetTitle(cfg.Title)
	}

	a := app.NewApp(demo.Builder())
	a.Stylesheet = cfg.Stylesheet()
	if cfg.Container != "" {
		a.Container = doc.FindByID(cfg.Container)
		if a.Container == nil {
			return nil, fmt.Errorf("container #%s not found in %s", cfg.Container, templateName(cfg.TemplatePath))
		}
	}
	if err := a.Run(doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", demo.Name, err)
	}
	return doc, nil
}

func loadDocument(templatePath string) (*dom.Document, error) {
	if templatePath == "" {
		return dom.NewDocument(), nil
	}
	f, err := os.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()
	return dom.ParseDocument(f)
}

func templateName(path string) string {
	if path == "" {
		return "the default page"
	}
	return path
}

func writeDocument(doc *dom.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
