package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/audit"
	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/rewrite"
	"github.com/aidanlsb/orgmap/internal/ruleset"
	"github.com/aidanlsb/orgmap/internal/shellquote"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var (
	remapSource      string
	remapDestBase    string
	remapInteractive bool
	remapDryRun      bool
	remapYes         bool
	remapNoBackup    bool
)

// remapPass is one rewrite applied to the document.
type remapPass struct {
	Value  string         `json:"value"`
	Result rewrite.Result `json:"result"`
}

type remapReport struct {
	Ruleset      string     `json:"ruleset"`
	Sources      *remapPass `json:"sources,omitempty"`
	Destinations *remapPass `json:"destinations,omitempty"`
	DryRun       bool       `json:"dry_run"`
	Saved        bool       `json:"saved"`
	Backup       string     `json:"backup,omitempty"`
}

// changed counts values whose text actually differs after the rewrite.
func (r *remapReport) changed() int {
	n := 0
	if r.Sources != nil {
		n += len(r.Sources.Result.Changes)
	}
	if r.Destinations != nil {
		n += len(r.Destinations.Result.Changes)
	}
	return n
}

type remapOptions struct {
	dryRun bool
	yes    bool
	backup bool
}

var remapCmd = &cobra.Command{
	Use:  "remap",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if remapInteractive {
			if isJSONOutput() {
				return handleErrorMsg(ErrInvalidInput, "--interactive cannot be combined with --json", "Pass --source and/or --dest-base instead")
			}
			return runRemapInteractive(newPrompter(os.Stdin, os.Stdout), remapOptionsFromFlags())
		}

		if strings.TrimSpace(remapSource) == "" && strings.TrimSpace(remapDestBase) == "" {
			if isJSONOutput() {
				return handleErrorMsg(ErrMissingArgument, "no changes specified", "Use --source or --dest-base to update directories")
			}
			printRemapUsageHint()
			return nil
		}

		doc, err := ruleset.Load(resolvedRulesetPath)
		if err != nil {
			return handleError(rulesetErrorCode(err), err, rulesetSuggestion(err))
		}

		report, err := remap(doc, remapSource, remapDestBase)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		report.Ruleset = resolvedRulesetPath
		return finishRemap(doc, report, remapOptionsFromFlags())
	},
}

func remapOptionsFromFlags() remapOptions {
	return remapOptions{
		dryRun: remapDryRun,
		yes:    remapYes,
		backup: getConfig().BackupEnabled() && !remapNoBackup,
	}
}

func printRemapUsageHint() {
	fmt.Println("No changes specified. Use --source or --dest-base to update directories.")
	fmt.Println("Example: orgmap remap --source ~/Documents --dest-base ~/Sorted")
	fmt.Println("Or use --interactive/-i for interactive mode.")
}

// remapCommandLine is the flag-driven command equivalent to report.
func remapCommandLine(report *remapReport) string {
	args := []string{"orgmap", "remap", "--ruleset", report.Ruleset}
	if report.Sources != nil {
		args = append(args, "--source", report.Sources.Value)
	}
	if report.Destinations != nil {
		args = append(args, "--dest-base", report.Destinations.Value)
	}
	return shellquote.Join(args...)
}

// remap applies the requested rewrites to doc. Empty values skip a pass.
func remap(doc *ruleset.Document, source, destBase string) (*remapReport, error) {
	report := &remapReport{}

	if source = strings.TrimSpace(source); source != "" {
		dir, err := paths.ExpandHome(source)
		if err != nil {
			return nil, err
		}
		report.Sources = &remapPass{Value: dir, Result: rewrite.Sources(doc, dir)}
	}

	if destBase = strings.TrimSpace(destBase); destBase != "" {
		base, err := paths.ExpandHome(destBase)
		if err != nil {
			return nil, err
		}
		report.Destinations = &remapPass{Value: base, Result: rewrite.Destinations(doc, base)}
	}

	return report, nil
}

// finishRemap previews, confirms, saves and journals a remap.
func finishRemap(doc *ruleset.Document, report *remapReport, opts remapOptions) error {
	var warnings []Warning
	if len(doc.Locations()) == 0 && report.Sources != nil {
		warnings = append(warnings, Warning{Code: WarnNoLocations, Message: "ruleset has no source locations"})
	}
	if len(doc.MoveTargets()) == 0 && report.Destinations != nil {
		warnings = append(warnings, Warning{Code: WarnNoMoveActions, Message: "ruleset has no move actions"})
	}

	if !isJSONOutput() {
		printRemapPreview(report)
		printWarnings(warnings)
	}

	if report.changed() == 0 {
		if isJSONOutput() {
			outputSuccessWithWarnings(report, warnings, &Meta{Count: 0})
			return nil
		}
		fmt.Println(ui.Success("Ruleset already up to date; nothing written."))
		return nil
	}

	if opts.dryRun {
		report.DryRun = true
		if isJSONOutput() {
			outputSuccessWithWarnings(report, warnings, &Meta{Count: report.changed(), DryRun: true})
			return nil
		}
		fmt.Println(ui.Hint("Dry run: nothing written."))
		return nil
	}

	if !opts.yes && shouldPromptForConfirm() {
		if !promptForConfirm(fmt.Sprintf("Save %s to %s?", ui.Count(report.changed(), "change"), paths.ContractHome(report.Ruleset))) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	backup, err := ruleset.Save(report.Ruleset, doc, ruleset.SaveOptions{Backup: opts.backup})
	if err != nil {
		return handleError(ErrFileWriteError, err, "")
	}
	report.Saved = true
	report.Backup = backup

	journalWarns := journalRemap(report)
	warnings = append(warnings, journalWarns...)

	if isJSONOutput() {
		outputSuccessWithWarnings(report, warnings, &Meta{Count: report.changed()})
		return nil
	}

	printWarnings(journalWarns)
	fmt.Println(ui.Successf("Configuration saved to %s", ui.FilePath(paths.ContractHome(report.Ruleset))))
	if backup != "" {
		fmt.Println(ui.Hint("  backup: " + paths.ContractHome(backup)))
	}
	return nil
}

// journalRemap records each saved pass. Failures become warnings; the
// ruleset is already written at this point.
func journalRemap(report *remapReport) []Warning {
	if !getConfig().JournalEnabled() {
		return nil
	}
	j := audit.New(resolvedStateDir, report.Ruleset, true)

	var warnings []Warning
	log := func(op string, pass *remapPass) {
		if pass == nil {
			return
		}
		if err := j.LogRemap(op, pass.Value, report.Backup, pass.Result); err != nil {
			warnings = append(warnings, Warning{Code: WarnJournalFailed, Message: err.Error()})
		}
	}
	log(audit.OpRemapSources, report.Sources)
	log(audit.OpRemapDestinations, report.Destinations)
	return warnings
}

func printRemapPreview(report *remapReport) {
	fmt.Printf("%s %s\n", ui.Header("Ruleset"), ui.FilePath(paths.ContractHome(report.Ruleset)))

	if p := report.Sources; p != nil {
		fmt.Printf("\n%s %s %s\n", ui.Count(p.Result.Count, "source directory reference"), ui.SymbolArrow, ui.FilePath(p.Value))
		printChanges(p.Result.Changes)
	}
	if p := report.Destinations; p != nil {
		fmt.Printf("\n%s to rebase under %s\n", ui.Count(p.Result.Count, "destination directory reference"), ui.FilePath(p.Value))
		printChanges(p.Result.Changes)
	}
	fmt.Println()
}

func printChanges(changes []rewrite.Change) {
	if len(changes) == 0 {
		fmt.Println(ui.Hint("  no values change"))
		return
	}
	tbl := ui.NewChangesTable(ui.NewDisplayContext())
	for _, c := range changes {
		tbl.AddRow(ui.ChangeRow{
			Rule: changeLabel(c),
			Old:  c.Old,
			New:  c.New,
			Note: changeNote(c),
		})
	}
	fmt.Println(tbl.Render())
}

func changeLabel(c rewrite.Change) string {
	if strings.TrimSpace(c.RuleName) != "" {
		return c.RuleName
	}
	return fmt.Sprintf("rule %d", c.Rule+1)
}

func changeNote(c rewrite.Change) string {
	if c.Field == rewrite.FieldDestination {
		return c.Tier.String()
	}
	return string(c.Field)
}

func printWarnings(warnings []Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, ui.Warning(w.Message))
	}
}

func rulesetErrorCode(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrRulesetNotFound
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ErrFileReadError
	}
	return ErrRulesetInvalid
}

func rulesetSuggestion(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "Pass --ruleset, set ruleset in settings, or run 'orgmap remap --interactive' to create one"
	}
	return ""
}

func init() {
	remapCmd.Flags().StringVarP(&remapSource, "source", "s", "", "Source directory to scan for files")
	remapCmd.Flags().StringVarP(&remapDestBase, "dest-base", "d", "", "Base destination directory for organized files")
	remapCmd.Flags().BoolVarP(&remapInteractive, "interactive", "i", false, "Prompt for the ruleset and directories")
	remapCmd.Flags().BoolVar(&remapDryRun, "dry-run", false, "Preview changes without writing the ruleset")
	remapCmd.Flags().BoolVarP(&remapYes, "yes", "y", false, "Apply without asking for confirmation")
	remapCmd.Flags().BoolVar(&remapNoBackup, "no-backup", false, "Do not keep a .bak copy of the ruleset")
	rootCmd.AddCommand(remapCmd)
}
