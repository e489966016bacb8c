// Package internal renders compiled patterns and binding environments for
// the CLI. Nothing here affects matching; it is presentation only.
package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/docline/docline/pattern"
)

const indentStep = "  "

var (
	compositeStyle = color.New(color.FgCyan, color.Bold)
	leafStyle      = color.New(color.FgYellow)
	valueStyle     = color.New(color.FgGreen)
	nameStyle      = color.New(color.FgCyan)
)

// FormatTree renders a pattern tree one node per line, children indented
// under their composite.
func FormatTree(p pattern.Pattern) string {
	var builder strings.Builder
	writeNode(&builder, p, 0)
	return builder.String()
}

func writeNode(builder *strings.Builder, p pattern.Pattern, depth int) {
	indent := strings.Repeat(indentStep, depth)
	switch node := p.(type) {
	case pattern.Composite:
		builder.WriteString(indent + compositeStyle.Sprint(node.Kind().String()) + "\n")
		for _, child := range node.Children() {
			writeNode(builder, child, depth+1)
		}
	case pattern.Leaf:
		builder.WriteString(indent + leafStyle.Sprint(leafLabel(node)) + "\n")
	default:
		builder.WriteString(indent + compositeStyle.Sprint(node.Kind().String()) + "\n")
	}
}

// leafLabel prints a leaf as its usage-facing identity plus its declared
// value when one is set.
func leafLabel(leaf pattern.Leaf) string {
	label := fmt.Sprintf("%s %s", leaf.Kind(), leaf.Name())
	if opt, ok := leaf.(*pattern.Option); ok && opt.Short() != "" && opt.Long() != "" {
		label = fmt.Sprintf("%s %s, %s", leaf.Kind(), opt.Short(), opt.Long())
	}
	if !leaf.Value().IsNone() {
		label += " = " + leaf.Value().String()
	}
	return label
}

// FormatBindings renders a binding environment as an aligned name/value
// table with names sorted for stable output.
func FormatBindings(binds map[string]pattern.Value) string {
	names := make([]string, 0, len(binds))
	width := 0
	for name := range binds {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		padding := strings.Repeat(" ", width-len(name))
		builder.WriteString(nameStyle.Sprint(name) + padding + "  " +
			valueStyle.Sprint(binds[name].String()) + "\n")
	}
	return builder.String()
}
