package main

import "testing"

func TestVersionString(t *testing.T) {
	prevVersion := buildVersion
	prevCommitID := buildCommitID
	t.Cleanup(func() {
		buildVersion = prevVersion
		buildCommitID = prevCommitID
	})

	buildVersion = "1.2.3"
	buildCommitID = "commit456"

	got := versionString()
	want := "focus 1.2.3 (commit commit456)"
	if got != want {
		t.Fatalf("expected version string %q, got %q", want, got)
	}
}

func TestRootCommandHasVersion(t *testing.T) {
	if rootCmd.Version == "" {
		t.Fatal("expected root command version to be set")
	}
}

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "focus" {
		t.Fatalf("expected root command name focus, got %q", rootCmd.Use)
	}
}
