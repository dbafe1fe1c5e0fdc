package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestDateAliasUsesSingleFlag(t *testing.T) {
	var date string
	cmd := &cobra.Command{Use: "example"}
	addDateFlagAliases(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "Example date")

	if err := cmd.Flags().Set("day", "2026-01-02"); err != nil {
		t.Fatalf("set day alias: %v", err)
	}
	if date != "2026-01-02" {
		t.Fatalf("expected date to be set via alias, got %q", date)
	}
	if !cmd.Flags().Changed("date") {
		t.Fatal("expected date flag to be marked as changed")
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--day ") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-d, --date") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}

func TestPickCompleteAlias(t *testing.T) {
	flag := pickCmd.Flags().Lookup("done")
	if flag == nil {
		t.Fatal("expected --done flag on pick")
	}
	if err := pickCmd.Flags().Set("complete", "true"); err != nil {
		t.Fatalf("set complete alias: %v", err)
	}
	t.Cleanup(func() {
		_ = pickCmd.Flags().Set("done", "false")
		pickDone = false
	})
	if !pickDone {
		t.Fatal("expected --complete to set --done")
	}
}
