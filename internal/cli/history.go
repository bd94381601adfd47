package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/audit"
	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var (
	historyLimit int
	historySince string
)

type historyData struct {
	Ruleset string        `json:"ruleset"`
	Journal string        `json:"journal"`
	Entries []audit.Entry `json:"entries"`
}

var historyCmd = &cobra.Command{
	Use:  "history",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j := audit.New(resolvedStateDir, resolvedRulesetPath, true)

		var since time.Time
		if v := strings.TrimSpace(historySince); v != "" {
			parsed, err := parseSince(v, time.Now())
			if err != nil {
				return handleError(ErrInvalidInput, err, "Use a duration like 72h or a date like 2026-01-31")
			}
			since = parsed
		}

		entries, err := historyEntries(j, since, historyLimit)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		if entries == nil {
			entries = []audit.Entry{}
		}

		if isJSONOutput() {
			outputSuccess(historyData{
				Ruleset: resolvedRulesetPath,
				Journal: j.Path(),
				Entries: entries,
			}, &Meta{Count: len(entries)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Printf("No rewrites recorded for %s\n", ui.FilePath(paths.ContractHome(resolvedRulesetPath)))
			if !getConfig().JournalEnabled() {
				fmt.Println(ui.Hint("The journal is disabled in settings."))
			}
			return nil
		}

		tbl := ui.NewTable(4)
		for _, e := range entries {
			tbl.AddRow(
				ui.Muted.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
				e.Operation,
				ui.FilePath(e.Value),
				ui.Hint(fmt.Sprintf("(%s)", ui.Count(len(e.Changes), "change"))),
			)
		}
		fmt.Print(tbl.String())
		return nil
	},
}

// historyEntries returns journal entries newest first, at most limit of
// them (zero means all). A zero since reads the whole journal.
func historyEntries(j *audit.Logger, since time.Time, limit int) ([]audit.Entry, error) {
	if since.IsZero() {
		return j.Tail(limit)
	}
	all, err := j.ReadSince(since)
	if err != nil {
		return nil, err
	}
	out := make([]audit.Entry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}

// parseSince accepts a duration back from now ("72h") or a local date
// ("2006-01-02") or an RFC 3339 timestamp.
func parseSince(value string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(value); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("--since duration must be positive: %s", value)
		}
		return now.Add(-d), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --since value %q", value)
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show (0 shows all)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only show entries at or after a duration ago or a date")
	rootCmd.AddCommand(historyCmd)
}
