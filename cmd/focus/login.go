package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/focusstation/internal/paths"
	"github.com/amonks/focusstation/internal/profile"
)

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Set the username written into session records",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLogin,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current username",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	path, err := paths.DefaultProfilePath()
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if err := profile.Save(path, profile.Profile{Username: name}); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", strings.TrimSpace(name))
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	path, err := paths.DefaultProfilePath()
	if err != nil {
		return err
	}

	p, loggedIn := profile.Load(path)
	if !loggedIn {
		fmt.Printf("%s (not logged in)\n", p.Username)
		return nil
	}
	fmt.Println(p.Username)
	return nil
}
