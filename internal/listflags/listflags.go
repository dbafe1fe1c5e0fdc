// Package listflags declares the flags shared by focus list commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag that includes finished tasks.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("all", false, "Include finished tasks")
		return
	}

	cmd.Flags().BoolVar(target, "all", false, "Include finished tasks")
}

// AddJSONFlag adds a shared --json flag.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output JSON")
}
