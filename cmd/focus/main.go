// Package main implements the focus CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus Station - focus timer, daily tasks and a shared leaderboard",
	Long: `Focus Station keeps a task list per day, times focus sessions and
records finished work to a shared session log. The leaderboard is computed
from every record in that log.

The session log is read from [remote] url in ~/.config/focusstation/config.toml
or FOCUS_REMOTE_URL. It may be an http(s) endpoint, a file:// URL or a path.
Without one, a local log in ~/.local/share/focusstation is used.`,
	SilenceUsage: true,
}
