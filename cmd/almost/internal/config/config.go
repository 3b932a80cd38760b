package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/almost/pkg/theme"
)

// FileName is the optional project configuration file.
const FileName = "almost.yaml"

// Defaults applied by Resolve.
const (
	DefaultDemo       = "hello"
	DefaultOutputPath = "build/index.html"
)

// Config represents the optional almost.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Output OutputConfig `yaml:"output"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Demo  string `yaml:"demo,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	Path      string `yaml:"path,omitempty"`
	Container string `yaml:"container,omitempty"`
	Template  string `yaml:"template,omitempty"`
}

// ThemeConfig holds extra stylesheet rules appended to the defaults.
type ThemeConfig struct {
	Rules []RuleConfig `yaml:"rules,omitempty"`
}

// RuleConfig is a single CSS rule.
type RuleConfig struct {
	Selector     string            `yaml:"selector"`
	Declarations map[string]string `yaml:"declarations"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Demo       string
	Title      string
	// OutputPath and TemplatePath are absolute.
	OutputPath   string
	TemplatePath string
	Container    string
	Rules        []theme.Rule
}

// Stylesheet returns the default stylesheet extended with the configured rules.
func (r *Resolved) Stylesheet() *theme.Stylesheet {
	return theme.Default().With(r.Rules...)
}

// LoadOptional reads almost.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads almost.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	demo := strings.TrimSpace(cfg.App.Demo)
	if demo == "" {
		demo = DefaultDemo
	}

	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = appName
	}

	outputPath := strings.TrimSpace(cfg.Output.Path)
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	outputPath = absPath(dir, outputPath)
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("output.path must be a file, %s is a directory", outputPath)
	}

	var templatePath string
	if t := strings.TrimSpace(cfg.Output.Template); t != "" {
		templatePath = absPath(dir, t)
	}

	rules, err := resolveRules(cfg.Theme.Rules)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		Demo:         demo,
		Title:        title,
		OutputPath:   outputPath,
		TemplatePath: templatePath,
		Container:    strings.TrimSpace(cfg.Output.Container),
		Rules:        rules,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "almost_app"
	}
	return base
}

func absPath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func resolveRules(in []RuleConfig) ([]theme.Rule, error) {
	rules := make([]theme.Rule, 0, len(in))
	for i, rc := range in {
		selector := strings.TrimSpace(rc.Selector)
		if selector == "" {
			return nil, fmt.Errorf("theme.rules[%d]: selector is required", i)
		}
		if len(rc.Declarations) == 0 {
			return nil, fmt.Errorf("theme.rules[%d] (%s): at least one declaration is required", i, selector)
		}
		for prop := range rc.Declarations {
			if strings.TrimSpace(prop) == "" {
				return nil, fmt.Errorf("theme.rules[%d] (%s): empty property name", i, selector)
			}
		}
		rules = append(rules, theme.RuleOf(selector, rc.Declarations))
	}
	return rules, nil
}
