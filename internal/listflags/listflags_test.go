package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddAllFlagBindsTarget(t *testing.T) {
	var all bool
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, &all)

	if err := cmd.Flags().Set("all", "true"); err != nil {
		t.Fatalf("set all: %v", err)
	}
	if !all {
		t.Fatal("expected --all to set target")
	}
}

func TestAddFlagsWithoutTarget(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, nil)
	AddJSONFlag(cmd, nil)

	for _, name := range []string{"all", "json"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("expected --%s flag", name)
		}
		if flag.DefValue != "false" {
			t.Fatalf("expected default --%s false, got %q", name, flag.DefValue)
		}
	}
}
