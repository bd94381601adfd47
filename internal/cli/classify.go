package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/classify"
	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/taxonomy"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var classifyBase string

type classifyResult struct {
	Input string `json:"input"`
	classify.Result
	Changed bool `json:"changed"`
}

var classifyCmd = &cobra.Command{
	Use:  "classify <path>...",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBaseFlag(classifyBase)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if base == "" {
			return handleErrorMsg(ErrMissingArgument, "--base is required", "Pass --base or set default_dest_base in settings")
		}

		results := classifyPaths(args, base)

		if isJSONOutput() {
			outputSuccess(results, &Meta{Count: len(results)})
			return nil
		}

		tbl := ui.NewTable(3)
		for _, r := range results {
			target := ui.FilePath(r.Path)
			if !r.Changed {
				target = ui.Hint("unchanged")
			}
			tbl.AddRow(ui.Muted.Render(r.Tier.String()), ui.Muted.Render(r.Kind.String()), ui.Transition(r.Input, target))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

func classifyPaths(inputs []string, base string) []classifyResult {
	t := taxonomy.ComposeDefault(base)
	out := make([]classifyResult, 0, len(inputs))
	for _, in := range inputs {
		r := classify.Path(in, t.Base, t)
		out = append(out, classifyResult{Input: in, Result: r, Changed: r.Path != in})
	}
	return out
}

// resolveBaseFlag expands "~" in a --base value, falling back to the
// default_dest_base setting.
func resolveBaseFlag(flag string) (string, error) {
	base := strings.TrimSpace(flag)
	if base == "" {
		base = strings.TrimSpace(getConfig().DefaultDestBase)
	}
	if base == "" {
		return "", nil
	}
	return paths.ExpandHome(base)
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyBase, "base", "b", "", "Destination base directory")
	rootCmd.AddCommand(classifyCmd)
}
