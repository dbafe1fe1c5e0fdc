package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amonks/focusstation/timer"
)

var timerCmd = &cobra.Command{
	Use:   "timer [minutes]",
	Short: "Run a focus session and record it",
	Long: `Run a focus session of the given length (default from [timer]
default-minutes) and record it to the session log when it ends.

Interrupting with ctrl+c finishes the session early and credits the whole
minutes elapsed, at least one. Tasks named with --task are marked done.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimer,
}

var (
	timerTasks []string
	timerTick  time.Duration
)

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.Flags().StringArrayVarP(&timerTasks, "task", "t", nil, "Task worked on during the session (repeatable)")
	timerCmd.Flags().DurationVar(&timerTick, "tick", time.Second, "Wall-clock length of one timer second")
	_ = timerCmd.Flags().MarkHidden("tick")
}

func parseMinutes(arg string) (int, error) {
	minutes, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q: %w", arg, timer.ErrNotDigit)
	}
	if minutes <= 0 {
		return 0, timer.ErrNoDuration
	}
	return minutes, nil
}

func runTimer(cmd *cobra.Command, args []string) error {
	if timerTick <= 0 {
		return fmt.Errorf("tick must be positive")
	}
	return withApp(func(a *app) error {
		minutes := a.cfg.Timer.DefaultMinutes
		if len(args) == 1 {
			parsed, err := parseMinutes(args[0])
			if err != nil {
				return err
			}
			minutes = parsed
		}

		t := timer.New()
		if err := t.SetMinutes(minutes); err != nil {
			return err
		}
		if err := t.Start(); err != nil {
			return err
		}
		fmt.Printf("Focusing for %d min. Press ctrl+c to finish early.\n", minutes)

		countdown(t, term.IsTerminal(int(os.Stdout.Fd())))

		_, err := t.Commit(timer.CommitOptions{
			Username: a.username(),
			Tasks:    timerTasks,
			Store:    a.store,
			Recorder: a.uploader,
			Notifier: a.notifier,
		})
		fmt.Println(timer.NotificationMessage(t.Logged()))
		return err
	})
}

// countdown runs t until it finishes or the process is interrupted.
func countdown(t *timer.Timer, interactive bool) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	ticker := time.NewTicker(timerTick)
	defer ticker.Stop()

	for t.State() == timer.StateRunning {
		if interactive {
			fmt.Printf("\r%s", t.Display())
		}
		select {
		case <-ticker.C:
			t.Tick(time.Second)
		case <-interrupts:
			_, _ = t.Finish()
		}
	}
	if interactive {
		fmt.Print("\r\033[K")
	}
}
