package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/ruleset"
	"github.com/aidanlsb/orgmap/internal/ui"
)

// runRemapInteractive asks for the ruleset and the new directories, then
// applies them like the flag-driven remap. A missing ruleset can be created
// from the minimal default.
func runRemapInteractive(p *prompter, opts remapOptions) error {
	fmt.Fprintln(p.out, ui.Header("=== orgmap ruleset customization ==="))

	answer := p.line("Path to ruleset file", paths.ContractHome(resolvedRulesetPath))
	path, err := paths.ResolveFile(answer)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	doc, err := ruleset.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(p.out, ui.Errorf("Ruleset not found at %s", path))
		if !p.confirm("Would you like to create a new ruleset?") {
			fmt.Fprintln(p.out, "Exiting. Please provide a valid ruleset path.")
			return fmt.Errorf("ruleset not found: %s", path)
		}
		doc = ruleset.Default()
		if _, err := ruleset.Save(path, doc, ruleset.SaveOptions{}); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		fmt.Fprintln(p.out, ui.Successf("Created %s", ui.FilePath(path)))
	case err != nil:
		return handleError(rulesetErrorCode(err), err, "")
	}

	settings := getConfig()
	var source, destBase string
	if p.confirm("Do you want to update source directories?") {
		source = p.line("Enter new source directory path", settings.DefaultSource)
	}
	if p.confirm("Do you want to update destination directories?") {
		destBase = p.line("Enter new destination base directory path", settings.DefaultDestBase)
	}
	if source == "" && destBase == "" {
		fmt.Fprintln(p.out, "No changes were made to the ruleset.")
		return nil
	}

	report, err := remap(doc, source, destBase)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	report.Ruleset = path

	// The answers above are the confirmation.
	opts.yes = true
	if err := finishRemap(doc, report, opts); err != nil {
		return err
	}
	fmt.Fprintln(p.out, ui.Hint("Next time: "+remapCommandLine(report)))
	return nil
}
