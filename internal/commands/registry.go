// Package commands provides a central registry of orgmap CLI commands.
// This registry is the single source of truth for command help text and
// the flags each command accepts.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name        string     // Command path (e.g., "remap", "settings init")
	Description string     // Short description
	LongDesc    string     // Long description (for --help)
	Args        []ArgMeta  // Positional arguments
	Flags       []FlagMeta // Command flags
	Examples    []string   // Usage examples
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "source")
	Short       string   // Short flag (e.g., "s" for -s)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString FlagType = "string"
	FlagTypeBool   FlagType = "bool"
	FlagTypeInt    FlagType = "int"
)

// Registry holds all registered commands, keyed by command path.
var Registry = map[string]Meta{
	"remap": {
		Name:        "remap",
		Description: "Point a ruleset at a new source directory and destination base",
		LongDesc: `Rewrites an organizer ruleset in place.

--source replaces every rule's locations with one directory. A rule whose
locations is a single value becomes a one-element list.

--dest-base re-roots every move destination under a new base directory. Each
destination is classified against the built-in category taxonomy, so
"/old/Organized/Media/Videos/clip.mp4" becomes
"<base>/Organized/Media/Videos/" and unrecognised paths land under
"<base>/Organized/Other/". Destinations already in canonical form are left
untouched.

Changes are previewed first. On a terminal you are asked to confirm; use
--yes to skip the prompt or --dry-run to only preview. Comments, key order
and unrelated rule settings are preserved.`,
		Flags: []FlagMeta{
			{Name: "source", Short: "s", Description: "Source directory to scan for files", Type: FlagTypeString},
			{Name: "dest-base", Short: "d", Description: "Base destination directory for organized files", Type: FlagTypeString},
			{Name: "interactive", Short: "i", Description: "Prompt for the ruleset and directories", Type: FlagTypeBool},
			{Name: "dry-run", Description: "Preview changes without writing the ruleset", Type: FlagTypeBool},
			{Name: "yes", Short: "y", Description: "Apply without asking for confirmation", Type: FlagTypeBool},
			{Name: "no-backup", Description: "Do not keep a .bak copy of the ruleset", Type: FlagTypeBool},
		},
		Examples: []string{
			"orgmap remap --source ~/Documents --dest-base ~/Sorted",
			"orgmap remap -c ~/.config/organize/config.yaml -d /mnt/archive --dry-run",
			"orgmap remap --interactive",
		},
	},
	"analyze": {
		Name:        "analyze",
		Description: "Summarize a ruleset's sources and destinations",
		LongDesc: `Reports the rules, move actions, source locations and distinct
destinations of a ruleset without changing it. Destinations are grouped into
category buckets and the base directory they share is inferred.`,
		Flags: []FlagMeta{
			{Name: "examples", Description: "Paths listed per bucket (0 lists all)", Type: FlagTypeInt, Default: "5"},
		},
		Examples: []string{
			"orgmap analyze",
			"orgmap analyze -c organize.yaml --json",
		},
	},
	"classify": {
		Name:        "classify",
		Description: "Show how destination paths would be rewritten",
		Args: []ArgMeta{
			{Name: "path", Description: "Destination path to classify", Required: true, Variadic: true},
		},
		Flags: []FlagMeta{
			{Name: "base", Short: "b", Description: "Destination base directory", Type: FlagTypeString},
		},
		Examples: []string{
			`orgmap classify --base /new '/old/Organized/Media/Videos/clip.mp4'`,
			`orgmap classify --base ~/Sorted '~/Downloads/{extension}/'`,
		},
	},
	"taxonomy": {
		Name:        "taxonomy",
		Description: "List the category taxonomy",
		Flags: []FlagMeta{
			{Name: "base", Short: "b", Description: "Show absolute paths under this base directory", Type: FlagTypeString},
		},
		Examples: []string{
			"orgmap taxonomy",
			"orgmap taxonomy --base ~/Organized",
		},
	},
	"history": {
		Name:        "history",
		Description: "Show saved rewrites of a ruleset",
		Flags: []FlagMeta{
			{Name: "limit", Short: "n", Description: "Number of entries to show (0 shows all)", Type: FlagTypeInt, Default: "10"},
			{Name: "since", Description: "Only show entries at or after a duration ago or a date", Type: FlagTypeString},
		},
		Examples: []string{
			"orgmap history",
			"orgmap history --since 72h",
			"orgmap history --limit 0 --json",
		},
	},
	"settings": {
		Name:        "settings",
		Description: "Manage the orgmap settings file",
	},
	"settings init": {
		Name:        "settings init",
		Description: "Create a commented settings file",
	},
	"settings show": {
		Name:        "settings show",
		Description: "Show the effective settings",
	},
	"version": {
		Name:        "version",
		Description: "Show orgmap version and build information",
	},
}
