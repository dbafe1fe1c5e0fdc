package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/focusstation/internal/listflags"
	"github.com/amonks/focusstation/internal/markdown"
	"github.com/amonks/focusstation/internal/ui"
	"github.com/amonks/focusstation/leaderboard"
	"github.com/amonks/focusstation/session"
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Short:   "Rank every user of the session log by minutes focused",
	Aliases: []string{"lb"},
	Args:    cobra.NoArgs,
	RunE:    runLeaderboard,
}

// leaderboard show
var leaderboardShowCmd = &cobra.Command{
	Use:   "show <user>",
	Short: "Show the totals and task history of one user",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLeaderboardShow,
}

var leaderboardJSON bool

func init() {
	rootCmd.AddCommand(leaderboardCmd)
	leaderboardCmd.AddCommand(leaderboardShowCmd)
	listflags.AddJSONFlag(leaderboardCmd, &leaderboardJSON)
}

func fetchContext(a *app) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.Remote.Timeout+time.Second)
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		ctx, cancel := fetchContext(a)
		defer cancel()

		entries := leaderboard.Fetch(ctx, a.repo, a.logger)
		if leaderboardJSON {
			return printJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		fmt.Print(formatLeaderboardTable(entries))
		return nil
	})
}

func formatLeaderboardTable(entries []leaderboard.Entry) string {
	table := ui.NewTable("RANK", "USER", "TIME", "TASKS").AlignRight(3)
	for _, entry := range entries {
		table.AddRow(
			fmt.Sprintf("#%d", entry.Rank),
			ui.Colorize(entry.Username, entry.Tier().Color()),
			leaderboard.FormatMinutes(entry.TotalMinutes),
			fmt.Sprint(entry.TotalTasks),
		)
	}
	return table.String()
}

func runLeaderboardShow(cmd *cobra.Command, args []string) error {
	username := strings.TrimSpace(strings.Join(args, " "))
	return withApp(func(a *app) error {
		ctx, cancel := fetchContext(a)
		defer cancel()

		records, err := a.repo.FetchAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch sessions: %w", err)
		}
		entry, ok := leaderboard.Find(leaderboard.Aggregate(records), username)
		if !ok {
			return fmt.Errorf("no sessions recorded for %s", username)
		}

		fmt.Println(markdown.Render(ui.TerminalWidth(), entry.Markdown()))
		fmt.Printf("\nLast session: %s\n", ui.Ago(lastSession(records, entry.Username), time.Now()))
		return nil
	})
}

// lastSession returns the latest timestamp among username's records.
func lastSession(records []session.Record, username string) time.Time {
	var latest time.Time
	for _, record := range records {
		name := record.Username
		if name == "" {
			name = leaderboard.UnknownUser
		}
		if name != username {
			continue
		}
		if at, ok := record.Time(time.Local); ok && at.After(latest) {
			latest = at
		}
	}
	return latest
}
