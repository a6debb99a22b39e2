package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTranscript = `{
  "segments": [
    {
      "text": "Hello there from the subtitle pipeline.",
      "start": 0.0,
      "end": 2.5,
      "words": [
        {"word": "Hello", "start": 0.0, "end": 0.4, "score": 0.98},
        {"word": "there", "start": 0.4, "end": 0.8, "score": 0.97},
        {"word": "from", "start": 0.8, "end": 1.1, "score": 0.99},
        {"word": "the", "start": 1.1, "end": 1.3, "score": 0.99},
        {"word": "subtitle", "start": 1.3, "end": 1.9, "score": 0.95},
        {"word": "pipeline.", "start": 1.9, "end": 2.5, "score": 0.96}
      ]
    }
  ]
}`

type cliTestEnv struct {
	baseDir        string
	configPath     string
	transcriptPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()

	configPath := filepath.Join(base, "config.toml")
	historyDir := filepath.Join(base, "history")
	content := fmt.Sprintf(
		"[history]\nenabled = true\ndir = %q\n\n[logging]\nformat = \"json\"\nlevel = \"error\"\n",
		historyDir,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	transcriptPath := filepath.Join(base, "talk.json")
	if err := os.WriteFile(transcriptPath, []byte(testTranscript), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	return &cliTestEnv{
		baseDir:        base,
		configPath:     configPath,
		transcriptPath: transcriptPath,
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRenderCommandWritesDocument(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "talk.ass")

	stdout, _, err := runCLI(t, env.configPath, "render", env.transcriptPath, "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)
	requireContains(t, doc, "[Script Info]")
	requireContains(t, doc, "[V4+ Styles]")
	requireContains(t, doc, "Dialogue: 0,0:00:00.00,")
	requireContains(t, stdout, "talk.ass")
}

func TestRenderCommandDefaultsOutputPath(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "render", env.transcriptPath); err != nil {
		t.Fatalf("render: %v", err)
	}

	target := strings.TrimSuffix(env.transcriptPath, ".json") + ".ass"
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected output at %s: %v", target, err)
	}
}

func TestRenderCommandRejectsMissingTranscript(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "render", filepath.Join(env.baseDir, "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing transcript")
	}
}

func TestCheckCommandReportsCounts(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "check", env.transcriptPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, stdout, "1 cues, 1 display events, 0 warnings, 2.5s of dialogue")
}

func TestHistoryCommandListsRenders(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "render", env.transcriptPath); err != nil {
		t.Fatalf("render: %v", err)
	}

	stdout, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, stdout, "talk.json")
}

func TestHistoryCommandEmptyLedger(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, stdout, "no renders recorded")
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "max_chars_per_line = 40")
	requireContains(t, stdout, "font_name")
	requireContains(t, stdout, "Arial")
}
