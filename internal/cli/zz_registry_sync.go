package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/commands"
)

// syncRegistryMetadata copies help text from the command registry onto the
// cobra tree. Use strings stay in the CLI.
func syncRegistryMetadata(root *cobra.Command) {
	var walk func(cmd *cobra.Command, path string)
	walk = func(cmd *cobra.Command, path string) {
		if path != "" {
			applyRegistryMetadata(cmd, path)
		}

		for _, child := range cmd.Commands() {
			childPath := child.Name()
			if path != "" {
				childPath = path + " " + child.Name()
			}
			walk(child, childPath)
		}
	}

	walk(root, "")
}

func applyRegistryMetadata(cmd *cobra.Command, path string) {
	meta, ok := commands.Registry[path]
	if !ok {
		return
	}

	if meta.Description != "" {
		cmd.Short = meta.Description
	}
	if meta.LongDesc != "" {
		cmd.Long = meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		cmd.Example = formatExamples(meta.Examples)
	}
}

func formatExamples(examples []string) string {
	var b strings.Builder
	for i, ex := range examples {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(ex)
	}
	return b.String()
}
