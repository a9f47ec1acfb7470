// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, directory creation, and file content.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newSkillCmd returns a command whose output is captured in buf.
func newSkillCmd(buf *bytes.Buffer, in string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(in))
	return cmd
}

func withSkillPrompt(t *testing.T, skip, terminal bool) {
	t.Helper()
	prevSkip, prevTerminal := skillSkipConfirm, stdinIsTerminal
	t.Cleanup(func() {
		skillSkipConfirm = prevSkip
		stdinIsTerminal = prevTerminal
	})
	skillSkipConfirm = skip
	stdinIsTerminal = func() bool { return terminal }
}

func TestSkillInstallCreatesFile(t *testing.T) {
	withSkillPrompt(t, true, false)
	home := t.TempDir()

	var buf bytes.Buffer
	if err := installSkill(newSkillCmd(&buf, ""), home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	dest := filepath.Join(home, ".claude", "skills", "magni", "SKILL.md")
	if skillPath(home) != dest {
		t.Errorf("skillPath = %q, want %q", skillPath(home), dest)
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	embedded, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if !bytes.Equal(written, embedded) {
		t.Error("Installed skill differs from embedded copy")
	}
	if !strings.Contains(buf.String(), "Installed magni skill") {
		t.Errorf("Expected success message, got %q", buf.String())
	}
}

func TestSkillInstallOverwritesExistingFile(t *testing.T) {
	withSkillPrompt(t, true, false)
	home := t.TempDir()

	dest := skillPath(home)
	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(dest, []byte("# Old Skill\nstale content"), 0600); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	var buf bytes.Buffer
	if err := installSkill(newSkillCmd(&buf, ""), home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read skill file: %v", err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Error("Old content should have been replaced")
	}
	if !strings.Contains(buf.String(), "already exists") {
		t.Error("Expected a note about the existing file")
	}
}

func TestSkillInstallPermissions(t *testing.T) {
	withSkillPrompt(t, true, false)
	home := t.TempDir()

	if err := installSkill(newSkillCmd(&bytes.Buffer{}, ""), home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	dirInfo, err := os.Stat(filepath.Dir(skillPath(home)))
	if err != nil {
		t.Fatalf("Failed to stat skill directory: %v", err)
	}
	if dirInfo.Mode().Perm()&0700 != 0700 {
		t.Errorf("Expected directory to be rwx for owner, got %v", dirInfo.Mode())
	}

	fileInfo, err := os.Stat(skillPath(home))
	if err != nil {
		t.Fatalf("Failed to stat skill file: %v", err)
	}
	if fileInfo.Mode().Perm() != 0600 {
		t.Errorf("Expected file mode 0600, got %v", fileInfo.Mode().Perm())
	}
}

func TestSkillInstallDeclined(t *testing.T) {
	withSkillPrompt(t, false, true)
	home := t.TempDir()

	var buf bytes.Buffer
	if err := installSkill(newSkillCmd(&buf, "n\n"), home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Installation canceled.") {
		t.Errorf("Expected cancel message, got %q", buf.String())
	}
	if _, err := os.Stat(skillPath(home)); !os.IsNotExist(err) {
		t.Error("Skill file should not exist after declining")
	}
}

func TestSkillInstallRefusesWithoutTerminal(t *testing.T) {
	withSkillPrompt(t, false, false)
	home := t.TempDir()

	err := installSkill(newSkillCmd(&bytes.Buffer{}, ""), home)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("Expected error mentioning --yes, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".claude")); !os.IsNotExist(err) {
		t.Error(".claude directory should not be created")
	}
}

func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}

func TestSkillEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	contentStr := string(content)
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}

	for _, marker := range []string{
		"name: magni",
		"description:",
		"## When to use magni",
		"mcp__magni__add_weight",
		"mcp__magni__get_stats",
		"mcp__magni__add_workout",
		"mcp__magni__complete_day",
		"mcp__magni__export_workouts_csv",
		"mcp__magni__import_workouts_csv",
		"magni://stats",
	} {
		if !strings.Contains(contentStr, marker) {
			t.Errorf("Expected SKILL.md to contain %q", marker)
		}
	}
}
