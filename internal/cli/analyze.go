package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/analyze"
	"github.com/aidanlsb/orgmap/internal/ruleset"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var analyzeExamples int

var analyzeCmd = &cobra.Command{
	Use:  "analyze",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := ruleset.Load(resolvedRulesetPath)
		if err != nil {
			return handleError(rulesetErrorCode(err), err, rulesetSuggestion(err))
		}

		report := analyze.Analyze(doc)

		var warnings []Warning
		if report.MoveActions == 0 {
			warnings = append(warnings, Warning{Code: WarnNoMoveActions, Message: "ruleset has no move actions"})
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(report, warnings, &Meta{Count: len(report.Destinations)})
			return nil
		}

		printWarnings(warnings)
		md := report.Markdown(analyzeExamples)
		display := ui.NewDisplayContext()
		if display.IsTTY {
			if rendered, err := ui.RenderMarkdown(md, display.AvailableWidth(ui.MarkdownRenderMargin)); err == nil {
				fmt.Print(rendered)
				return nil
			}
		}
		fmt.Print(md)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeExamples, "examples", 5, "Paths listed per bucket (0 lists all)")
	rootCmd.AddCommand(analyzeCmd)
}
