// Package theme generates the global stylesheet that gives the widget
// catalog's class names their meaning.
//
// The default stylesheet holds a box-sizing reset and one rule per catalog
// class. Applications extend it with their own rules:
//
//	sheet := theme.Default().With(
//	    theme.RuleOf(".title", map[string]string{"color": "teal"}),
//	)
//	doc.InjectStyle(sheet.CSS())
package theme

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-drift/almost/pkg/layout"
)

// Declaration is a single CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations, in order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// RuleOf builds a rule from a property map. Properties are sorted so the
// output is stable.
func RuleOf(selector string, declarations map[string]string) Rule {
	r := Rule{Selector: selector}
	for _, prop := range slices.Sorted(maps.Keys(declarations)) {
		r.Declarations = append(r.Declarations, Declaration{Property: prop, Value: declarations[prop]})
	}
	return r
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// With returns a copy of the stylesheet with rules appended.
func (s *Stylesheet) With(rules ...Rule) *Stylesheet {
	out := &Stylesheet{Rules: make([]Rule, 0, len(s.Rules)+len(rules))}
	out.Rules = append(out.Rules, s.Rules...)
	out.Rules = append(out.Rules, rules...)
	return out
}

// Selectors returns every selector in order.
func (s *Stylesheet) Selectors() []string {
	out := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		out[i] = r.Selector
	}
	return out
}

// CSS renders the stylesheet as text.
func (s *Stylesheet) CSS() string {
	var sb strings.Builder
	for i, r := range s.Rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.Selector)
		sb.WriteString(" {\n")
		for _, d := range r.Declarations {
			sb.WriteString("  ")
			sb.WriteString(d.Property)
			sb.WriteString(": ")
			sb.WriteString(d.Value)
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

func decls(pairs ...string) []Declaration {
	out := make([]Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return out
}

// alignmentDecls positions an absolutely placed stack child.
var alignmentDecls = map[layout.Alignment][]Declaration{
	layout.AlignmentTopLeft:      decls("top", "0", "left", "0"),
	layout.AlignmentTopCenter:    decls("top", "0", "left", "50%", "transform", "translateX(-50%)"),
	layout.AlignmentTopRight:     decls("top", "0", "right", "0"),
	layout.AlignmentCenterLeft:   decls("top", "50%", "left", "0", "transform", "translateY(-50%)"),
	layout.AlignmentCenter:       decls("top", "50%", "left", "50%", "transform", "translate3d(-50%, -50%, 0)"),
	layout.AlignmentCenterRight:  decls("top", "50%", "right", "0", "transform", "translateY(-50%)"),
	layout.AlignmentBottomLeft:   decls("bottom", "0", "left", "0"),
	layout.AlignmentBottomCenter: decls("bottom", "0", "left", "50%", "transform", "translateX(-50%)"),
	layout.AlignmentBottomRight:  decls("bottom", "0", "right", "0"),
}

// Default returns the reset plus the rules for every catalog class.
func Default() *Stylesheet {
	s := &Stylesheet{Rules: []Rule{
		{"*", decls("box-sizing", "border-box")},
		{"html, body", decls("height", "100%")},
		{"body", decls("margin", "0")},
		{"." + string(layout.BoxConstraintsExpand), decls("width", "100%", "height", "100%")},
		{"." + string(layout.BoxConstraintsLoose), decls("flex", "none")},
		{".row", decls("display", "flex", "flex-direction", "row")},
		{".column", decls("display", "flex", "flex-direction", "column")},
		{".center", decls("display", "flex", "flex", "1", "justify-content", "center", "align-items", "center")},
		{".stack", decls("position", "relative")},
		{".stack > *", decls("position", "absolute")},
	}}
	for _, a := range layout.Alignments {
		s.Rules = append(s.Rules, Rule{Selector: "." + a.ClassName(), Declarations: alignmentDecls[a]})
	}
	return s
}
