package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/teampulse/internal/roster"
	"github.com/simonbystrom/teampulse/internal/team"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var showMembers bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print team status counts without starting the dashboard",
		Long: `Load the roster once and print how many members are in each status,
plus the active and away totals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			closer, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			members, err := roster.FromConfig(cfg.Roster).Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeSummary(out, team.Summarize(members))
			if showMembers {
				fmt.Fprintln(out)
				writeMembers(out, team.Filter{}.Apply(members))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showMembers, "members", "m", false, "also list every member")
	return cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeSummary(w io.Writer, s team.Summary) {
	t := newTable("Status", "Members")
	for _, st := range team.Statuses() {
		t.Row(string(st), strconv.Itoa(s.Counts.Get(st)))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Total: %d  Active: %d  Away: %d  (%d%% active)\n",
		s.Total, s.Active, s.Away, s.ActivePercent())
}

func writeMembers(w io.Writer, members []team.Member) {
	t := newTable("Name", "Email", "Status", "Active", "Done")
	for _, m := range members {
		load := team.TaskLoad(m)
		t.Row(m.Name, m.Email, string(m.Status), strconv.Itoa(load.Active), strconv.Itoa(load.Completed))
	}
	fmt.Fprintln(w, t.Render())
}
