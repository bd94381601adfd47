package analyze

import (
	"fmt"
	"strings"
)

// Markdown renders the report as a markdown document. At most examples
// paths are listed per bucket; zero lists them all.
func (r *Report) Markdown(examples int) string {
	var sb strings.Builder

	sb.WriteString("# Ruleset analysis\n\n")
	fmt.Fprintf(&sb, "- **Rules:** %d\n", r.Rules)
	fmt.Fprintf(&sb, "- **Move actions:** %d\n", r.MoveActions)
	fmt.Fprintf(&sb, "- **Distinct destinations:** %d\n", len(r.Destinations))
	if r.BaseDir != "" {
		fmt.Fprintf(&sb, "- **Base directory:** `%s`\n", r.BaseDir)
	} else {
		sb.WriteString("- **Base directory:** (none found)\n")
	}
	fmt.Fprintf(&sb, "- **Kinds:** %d organized, %d cleanup, %d unknown\n",
		r.Kinds.Organized, r.Kinds.Cleanup, r.Kinds.Unknown)

	if len(r.Sources) > 0 {
		sb.WriteString("\n## Sources\n\n")
		for _, s := range r.Sources {
			fmt.Fprintf(&sb, "- `%s`\n", s)
		}
	}

	for _, b := range r.Buckets {
		if len(b.Paths) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s (%d)\n\n", b.Name, len(b.Paths))
		shown := b.Paths
		if examples > 0 && len(shown) > examples {
			shown = shown[:examples]
		}
		for _, p := range shown {
			fmt.Fprintf(&sb, "- `%s`\n", p)
		}
		if rest := len(b.Paths) - len(shown); rest > 0 {
			fmt.Fprintf(&sb, "- … and %d more\n", rest)
		}
	}

	return sb.String()
}
