package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/focusstation/internal/testsupport"
)

func runScripts(t *testing.T, dir string) {
	t.Helper()
	testscript.Run(t, testscript.Params{
		Dir: dir,
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset":  testsupport.CmdEnvSet,
			"records": testsupport.CmdRecords,
		},
	})
}

func TestVersionScripts(t *testing.T) {
	runScripts(t, "testdata/version")
}

func TestLoginScripts(t *testing.T) {
	runScripts(t, "testdata/login")
}

func TestTaskScripts(t *testing.T) {
	runScripts(t, "testdata/task")
}

func TestLeaderboardScripts(t *testing.T) {
	runScripts(t, "testdata/leaderboard")
}

func TestPickScripts(t *testing.T) {
	runScripts(t, "testdata/pick")
}

func TestTimerScripts(t *testing.T) {
	runScripts(t, "testdata/timer")
}
