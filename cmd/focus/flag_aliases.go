package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var dateFlagAliases = map[string]string{
	"day": "date",
}

var doneFlagAliases = map[string]string{
	"complete": "done",
}

func addDateFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), dateFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
