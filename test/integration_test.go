// ABOUTME: Integration tests for the magni CLI.
// ABOUTME: Builds the binary and drives a full routine and weight workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "magni")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/magni")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+tmpDir,
		"MAGNI_BACKEND=sqlite",
		"MAGNI_TIMEZONE=UTC",
	)

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	expect := func(want string, args ...string) string {
		t.Helper()
		output, err := run(args...)
		if err != nil {
			t.Fatalf("magni %s failed: %v\n%s", strings.Join(args, " "), err, output)
		}
		if !strings.Contains(output, want) {
			t.Errorf("magni %s: expected %q in output, got: %s", strings.Join(args, " "), want, output)
		}
		return output
	}

	expect("Added weight 182.0", "weight", "add", "182", "--at", "2024-03-01 07:00")
	expect("Added weight 181.2", "weight", "add", "181.2", "--at", "2024-03-02 07:00")
	expect("2024-03-02", "stats")

	expect("Added Back Squat to day 1", "workout", "add", "Back Squat", "--weight", "225", "--sets", "5", "--reps", "5")
	expect("Added Bench Press to day 2", "workout", "add", "Bench Press", "--weight", "185", "--day", "2")
	expect("Day 1 (current)", "workout", "list")

	expect("Next up: day 2", "day", "complete")
	expect("Back Squat", "history", "list")

	csvPath := filepath.Join(tmpDir, "routine.csv")
	expect("Exported to", "export", "csv", "-o", csvPath)
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "id,name,weight,sets,reps,notes,supersetParentId,altParentId,day,dayOrder") {
		t.Errorf("Unexpected CSV header: %s", data)
	}

	// stdin is not a terminal, so replacing the routine needs --yes
	if output, err := run("import", csvPath); err == nil {
		t.Errorf("Expected import without --yes to fail, got: %s", output)
	}
	expect("Imported 2 workouts", "import", csvPath, "--yes")

	if _, err := os.Stat(filepath.Join(dataDir, "magni.db")); err != nil {
		t.Errorf("Expected database under --data-dir: %v", err)
	}
}
