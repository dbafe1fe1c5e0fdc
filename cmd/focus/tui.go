package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amonks/focusstation/internal/focustui"
	"github.com/amonks/focusstation/internal/paths"
	"github.com/amonks/focusstation/picker"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive timer, tasks, wheel and leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logOutput, closeLog := tuiLogOutput()
	defer closeLog()

	a, err := openApp(logOutput)
	if err != nil {
		return err
	}
	defer a.close()

	return focustui.Run(cmd.Context(), focustui.Options{
		Username:       a.username(),
		Store:          a.store,
		Repository:     a.repo,
		Recorder:       a.uploader,
		Notifier:       a.notifier,
		Picker:         picker.New(nil),
		DefaultMinutes: a.cfg.Timer.DefaultMinutes,
		SpinFrames:     a.cfg.Timer.SpinFrames,
	})
}

// tuiLogOutput sends diagnostics to focus.log in the data directory while
// the terminal is owned by the interface.
func tuiLogOutput() (io.Writer, func()) {
	dir, err := paths.DefaultDataDir()
	if err != nil {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	file, err := os.OpenFile(filepath.Join(dir, "focus.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return file, func() { _ = file.Close() }
}
