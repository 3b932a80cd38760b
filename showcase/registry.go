// Package showcase holds the demo applications rendered by the almost CLI.
package showcase

import (
	"fmt"
	"slices"

	"github.com/go-drift/almost/pkg/core"
)

// Demo represents a showcase application.
type Demo struct {
	Name        string
	Title       string
	Description string
	Builder     func() core.Widget
}

// DefaultDemo is rendered when no demo is named.
const DefaultDemo = "hello"

// demos is the registry of all showcase applications.
// Add new demos here to make them available to the CLI.
var demos = []Demo{
	{"hello", "Almost Flutter", "App bar over a hello world body", buildHelloApp},
	{"layouts", "Layouts", "Row, Column and Expanded composition", buildLayoutsApp},
	{"alignment", "Alignment", "All nine Align positions in a Stack", buildAlignmentApp},
}

// Demos returns all registered demos in registration order.
func Demos() []Demo {
	return slices.Clone(demos)
}

// Names returns the registered demo names in registration order.
func Names() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a demo by name. An empty name selects [DefaultDemo].
func Lookup(name string) (Demo, error) {
	if name == "" {
		name = DefaultDemo
	}
	for _, d := range demos {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("unknown demo %q (available: %v)", name, Names())
}
