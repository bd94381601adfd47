package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/audit"
	"github.com/aidanlsb/orgmap/internal/config"
	"github.com/aidanlsb/orgmap/internal/ui"
)

func settingsData() map[string]interface{} {
	c := getConfig()
	return map[string]interface{}{
		"settings_path":     resolvedSettingsPath,
		"exists":            settingsExist,
		"ruleset":           resolvedRulesetPath,
		"default_source":    strings.TrimSpace(c.DefaultSource),
		"default_dest_base": strings.TrimSpace(c.DefaultDestBase),
		"backup":            c.BackupEnabled(),
		"journal":           c.JournalEnabled(),
		"state_dir":         resolvedStateDir,
		"journal_path":      audit.PathFor(resolvedStateDir, resolvedRulesetPath),
		"ui": map[string]interface{}{
			"accent": strings.TrimSpace(c.UI.Accent),
		},
	}
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	if isJSONOutput() {
		outputSuccess(settingsData(), nil)
		return nil
	}

	c := getConfig()
	if !settingsExist {
		fmt.Printf("Settings file does not exist: %s\n", resolvedSettingsPath)
		fmt.Println(ui.Hint("Run 'orgmap settings init' to create it. Defaults are shown below."))
	} else {
		fmt.Printf("settings: %s\n", resolvedSettingsPath)
	}

	fmt.Printf("ruleset: %s\n", resolvedRulesetPath)
	if v := strings.TrimSpace(c.DefaultSource); v != "" {
		fmt.Printf("default_source: %s\n", v)
	}
	if v := strings.TrimSpace(c.DefaultDestBase); v != "" {
		fmt.Printf("default_dest_base: %s\n", v)
	}
	fmt.Printf("backup: %t\n", c.BackupEnabled())
	fmt.Printf("journal: %t\n", c.JournalEnabled())
	fmt.Printf("state_dir: %s\n", resolvedStateDir)
	if v := strings.TrimSpace(c.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	created, err := config.CreateDefaultAt(resolvedSettingsPath)
	if err != nil {
		return handleError(ErrFileWriteError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"settings_path": resolvedSettingsPath,
			"created":       created,
		}, nil)
		return nil
	}

	if created {
		fmt.Println(ui.Successf("Created settings file: %s", ui.FilePath(resolvedSettingsPath)))
	} else {
		fmt.Printf("Settings file already exists: %s\n", resolvedSettingsPath)
	}
	return nil
}

var settingsCmd = &cobra.Command{
	Use:  "settings",
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:  "init",
	Args: cobra.NoArgs,
	RunE: runSettingsInit,
}

var settingsShowCmd = &cobra.Command{
	Use:  "show",
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}
