package output

import (
	"fmt"
	"strings"

	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// Reference renders the registry's visible entries as a markdown document:
// one table of commands and one of variables, both sorted by name.
func Reference(reg *registry.Registry) string {
	var b strings.Builder
	b.WriteString("# Console reference\n\n")

	b.WriteString("## Commands\n\n")
	b.WriteString("| Name | Usage | Description | Flags |\n")
	b.WriteString("|------|-------|-------------|-------|\n")
	for _, meta := range reg.Commands() {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			meta.Name, cell(meta.Usage), cell(meta.Description), flagCell(meta.Flags))
	}

	b.WriteString("\n## Variables\n\n")
	b.WriteString("| Name | Type | Default | Range | Description | Flags |\n")
	b.WriteString("|------|------|---------|-------|-------------|-------|\n")
	for _, cv := range reg.Vars("") {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s | %s | %s |\n",
			cv.Name(), cv.Kind(), cv.Default(), cell(cv.RangeString()), cell(cv.Description()), flagCell(cv.Flags()))
	}
	return b.String()
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func flagCell(f contypes.Flags) string {
	if f == contypes.FlagNone {
		return "-"
	}
	return f.String()
}
