package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amonks/focusstation/internal/ui"
	"github.com/amonks/focusstation/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a random pending task for today",
	Long: `Pick a random pending task for today.

On a terminal the wheel spins through a few candidates before settling.
The pick is not recorded unless --done is given.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

var (
	pickDone   bool
	pickNoSpin bool
)

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVar(&pickDone, "done", false, "Mark the picked task done and record it")
	pickCmd.Flags().BoolVar(&pickNoSpin, "no-spin", false, "Skip the wheel animation")
	setFlagAliases(pickCmd.Flags(), doneFlagAliases)
}

func runPick(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		day := a.store.Today()
		pending := a.store.ListPending(day)

		frames := a.cfg.Timer.SpinFrames
		animate := !pickNoSpin && term.IsTerminal(int(os.Stdout.Fd()))
		if !animate {
			frames = 0
		}

		picked, err := picker.New(nil).Spin(pending, frames, func(frame picker.Frame) {
			fmt.Printf("\r\033[K%s", ui.Bold(frame.Task.Text))
			time.Sleep(frame.Delay)
		})
		if animate && frames > 0 {
			fmt.Print("\r\033[K")
		}
		if errors.Is(err, picker.ErrEmptyPool) {
			return fmt.Errorf("no pending tasks for %s", day)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Picked: %s\n", ui.Colorize(picked.Text, "#fcd34d"))
		if !pickDone {
			return nil
		}
		if _, err := a.store.CompleteTask(day, picked.Text); err != nil {
			return err
		}
		fmt.Printf("Completed task: %s\n", picked.Text)
		return nil
	})
}
