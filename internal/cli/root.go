// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/config"
	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var (
	// Global flags
	rulesetFlag  string
	settingsFlag string

	// Resolved values
	resolvedRulesetPath  string
	resolvedSettingsPath string
	resolvedStateDir     string
	settingsExist        bool
	cfg                  *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orgmap",
	Short: "orgmap - retarget file-organizer rulesets",
	Long: `orgmap rewrites the source and destination directories of a
file-organizer ruleset (organize.yaml) while keeping its categories intact.

Destinations are mapped onto a fixed taxonomy of Organized and Cleanup
categories, so a ruleset written for one machine can be pointed at another
directory tree in one step.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		if err := loadSettings(); err != nil {
			if isJSONOutput() {
				outputErrorFromErr(ErrSettingsInvalid, err, "Fix the file or pass --settings with another path")
			}
			return err
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		rulesetPath, err := paths.ResolveFile(config.ResolveRulesetPath(rulesetFlag, cfg))
		if err != nil {
			return fmt.Errorf("failed to resolve ruleset path: %w", err)
		}
		resolvedRulesetPath = rulesetPath
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rulesetFlag, "ruleset", "c", "", "Path to the organizer ruleset (default: settings ruleset, else organize.yaml)")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Path to the settings file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func loadSettings() error {
	resolvedSettingsPath = config.ResolveSettingsPath(settingsFlag)

	_, statErr := os.Stat(resolvedSettingsPath)
	settingsExist = statErr == nil

	loaded, err := config.LoadOrDefault(resolvedSettingsPath)
	if err != nil {
		return err
	}
	cfg = loaded
	resolvedStateDir = config.ResolveStateDir(resolvedSettingsPath, cfg)
	return nil
}

// getConfig returns the loaded settings, never nil.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
