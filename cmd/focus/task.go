package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/focusstation/internal/listflags"
	"github.com/amonks/focusstation/internal/ui"
	"github.com/amonks/focusstation/task"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task list of a day",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task; the arguments are joined into one task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

// task done
var taskDoneCmd = &cobra.Command{
	Use:     "done <text>...",
	Short:   "Mark the first matching pending task done and record it",
	Aliases: []string{"complete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTaskDone,
}

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:     "delete <text>...",
	Short:   "Delete the first matching task",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTaskDelete,
}

// task list
var taskListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the pending tasks of a day",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTaskList,
}

// task days
var taskDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days that have tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskDays,
}

var (
	taskDate     string
	taskListAll  bool
	taskListJSON bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskDoneCmd, taskDeleteCmd, taskListCmd, taskDaysCmd)

	addDateFlagAliases(taskAddCmd, taskDoneCmd, taskDeleteCmd, taskListCmd)
	for _, cmd := range []*cobra.Command{taskAddCmd, taskDoneCmd, taskDeleteCmd, taskListCmd} {
		cmd.Flags().StringVarP(&taskDate, "date", "d", "", "Day as YYYY-MM-DD (default today)")
	}
	listflags.AddAllFlag(taskListCmd, &taskListAll)
	listflags.AddJSONFlag(taskListCmd, &taskListJSON)
}

// resolveDay returns the day named by --date, or today.
func resolveDay(store *task.Store, date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return store.Today(), nil
	}
	parsed, err := time.ParseInLocation(task.DayLayout, date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return task.DayKey(parsed), nil
}

func taskText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", task.ErrEmptyText
	}
	return text, nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	text, err := taskText(args)
	if err != nil {
		return err
	}
	return withApp(func(a *app) error {
		day, err := resolveDay(a.store, taskDate)
		if err != nil {
			return err
		}
		if err := a.store.AddTask(day, text); err != nil {
			return err
		}
		fmt.Printf("Added task: %s\n", text)
		return nil
	})
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	text, err := taskText(args)
	if err != nil {
		return err
	}
	return withApp(func(a *app) error {
		day, err := resolveDay(a.store, taskDate)
		if err != nil {
			return err
		}
		if _, err := a.store.CompleteTask(day, text); err != nil {
			return err
		}
		fmt.Printf("Completed task: %s\n", text)
		return nil
	})
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	text, err := taskText(args)
	if err != nil {
		return err
	}
	return withApp(func(a *app) error {
		day, err := resolveDay(a.store, taskDate)
		if err != nil {
			return err
		}
		removed, err := a.store.DeleteTask(day, text)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("task not found: %s", text)
		}
		fmt.Printf("Deleted task: %s\n", text)
		return nil
	})
}

func runTaskList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		day, err := resolveDay(a.store, taskDate)
		if err != nil {
			return err
		}

		tasks := a.store.ListPending(day)
		if taskListAll {
			tasks = a.store.List(day)
		}
		if taskListJSON {
			if tasks == nil {
				tasks = []task.Task{}
			}
			return printJSON(tasks)
		}

		if len(tasks) == 0 {
			fmt.Println(emptyTaskListMessage(day, taskListAll))
			return nil
		}
		for _, item := range tasks {
			fmt.Println(formatTaskLine(item))
		}
		return nil
	})
}

func emptyTaskListMessage(day string, all bool) string {
	if all {
		return fmt.Sprintf("No tasks for %s.", day)
	}
	return fmt.Sprintf("No pending tasks for %s.", day)
}

func formatTaskLine(item task.Task) string {
	if item.Done {
		return "[x] " + item.Text
	}
	return "[ ] " + item.Text
}

func runTaskDays(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		buckets := a.store.Load()
		days := buckets.Days()
		if len(days) == 0 {
			fmt.Println("No tasks yet.")
			return nil
		}

		table := ui.NewTable("DAY", "DONE", "PENDING").AlignRight(1, 2)
		for _, day := range days {
			pending := len(buckets.Pending(day))
			done := len(buckets[day]) - pending
			table.AddRow(day, fmt.Sprint(done), fmt.Sprint(pending))
		}
		fmt.Print(table.String())
		return nil
	})
}
