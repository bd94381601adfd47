package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/orgmap/internal/paths"
	"github.com/aidanlsb/orgmap/internal/taxonomy"
	"github.com/aidanlsb/orgmap/internal/ui"
)

var taxonomyBase string

type taxonomyRow struct {
	Rel  string        `json:"rel"`
	Kind taxonomy.Kind `json:"kind"`
	Path string        `json:"path,omitempty"`
}

var taxonomyCmd = &cobra.Command{
	Use:  "taxonomy",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var base string
		if b := strings.TrimSpace(taxonomyBase); b != "" {
			expanded, err := paths.ExpandHome(b)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			base = expanded
		}

		rows := taxonomyRows(base)

		if isJSONOutput() {
			outputSuccess(rows, &Meta{Count: len(rows)})
			return nil
		}

		tbl := ui.NewTable(3)
		for _, r := range rows {
			if r.Path == "" {
				tbl.AddRow(ui.Muted.Render(r.Kind.String()), r.Rel)
				continue
			}
			tbl.AddRow(ui.Muted.Render(r.Kind.String()), r.Rel, ui.FilePath(r.Path))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

// taxonomyRows lists the table in match order. Paths are filled in only
// when a base is given.
func taxonomyRows(base string) []taxonomyRow {
	if base == "" {
		entries := taxonomy.Default()
		rows := make([]taxonomyRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, taxonomyRow{Rel: e.Rel, Kind: e.Kind})
		}
		return rows
	}

	resolved := taxonomy.ComposeDefault(base)
	rows := make([]taxonomyRow, 0, resolved.Len())
	for _, e := range resolved.Entries {
		rows = append(rows, taxonomyRow{Rel: e.Rel, Kind: e.Kind, Path: e.Abs})
	}
	return rows
}

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyBase, "base", "b", "", "Show absolute paths under this base directory")
	rootCmd.AddCommand(taxonomyCmd)
}
