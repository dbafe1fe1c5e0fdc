package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/focusstation/session"
)

var (
	buildOnce sync.Once
	focusPath string
	buildErr  error
)

// BuildFocus builds the focus binary once and returns its path.
func BuildFocus(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "focus-bin-")
		if err != nil {
			buildErr = err
			return
		}

		focusPath = filepath.Join(binDir, "focus")
		cmd := exec.Command("go", "build", "-o", focusPath, "./cmd/focus")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build focus: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return focusPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("FOCUS", BuildFocus(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	env.Setenv("FOCUS_REMOTE_URL", "file://"+filepath.Join(env.WorkDir, "sessions.json"))
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdRecords checks how many session records a log file holds, optionally
// only those with the given duration label.
func CmdRecords(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("records does not support negation")
	}
	if len(args) != 2 && len(args) != 3 {
		ts.Fatalf("usage: records FILE COUNT [DURATION]")
	}

	want, err := strconv.Atoi(args[1])
	if err != nil {
		ts.Fatalf("parse count: %v", err)
	}

	data, err := os.ReadFile(ts.MkAbs(args[0]))
	if err != nil && !os.IsNotExist(err) {
		ts.Fatalf("read session log: %v", err)
	}
	records, err := session.DecodeRecords(data)
	if err != nil {
		ts.Fatalf("parse session log: %v", err)
	}

	got := 0
	for _, record := range records {
		if len(args) == 3 && record.Duration != args[2] {
			continue
		}
		got++
	}
	if got != want {
		ts.Fatalf("expected %d records, found %d", want, got)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
