package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diagraft/diagraft/pkg/config"
	"github.com/diagraft/diagraft/pkg/errors"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"generate", "validate", "watch", "preview", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()

	applyOverrides(&cfg, "", "")
	if cfg.Model != config.DefaultModelPath || cfg.HTML != config.DefaultHTMLPath {
		t.Errorf("empty overrides changed config: %+v", cfg)
	}

	applyOverrides(&cfg, "m.yml", "page.html")
	if cfg.Model != "m.yml" || cfg.HTML != "page.html" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestResolveConfigExplicitPathMissing(t *testing.T) {
	c := testCLI()
	_, err := c.resolveConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestResolveConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("model = \"m.yml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testCLI()
	cfg, err := c.resolveConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != filepath.Join(dir, "m.yml") {
		t.Errorf("Model = %q, want resolved against the config dir", cfg.Model)
	}
}

const cliTestModel = `diagram:
  entities:
    - id: a
      pos: {x: 0, y: 0}
    - id: b
      pos: {x: 10, y: 0}
  relations:
    - {from: a, to: b, kind: flow}
`

const cliTestPage = `<html>
<!-- BEGIN AUTO-RELATIONS -->
<!-- END AUTO-RELATIONS -->
</html>
`

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.yml")
	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(modelPath, []byte(cliTestModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(htmlPath, []byte(cliTestPage), 0o644); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetArgs([]string{"generate", "--model", modelPath, "--html", htmlPath})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<path class="rel rel-flow" d="M 0 0 L 10 0" />`) {
		t.Errorf("fragment not spliced:\n%s", data)
	}
}

func TestGenerateCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.yml")
	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(modelPath, []byte(cliTestModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(htmlPath, []byte(cliTestPage), 0o644); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetArgs([]string{"generate", "--model", modelPath, "--html", htmlPath, "--dry-run"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != cliTestPage {
		t.Error("dry run modified the target file")
	}
}

func TestValidateCommandReportsModelErrors(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.yml")
	htmlPath := filepath.Join(dir, "index.html")
	badModel := strings.Replace(cliTestModel, "kind: flow", "kind: loop", 1)
	if err := os.WriteFile(modelPath, []byte(badModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(htmlPath, []byte(cliTestPage), 0o644); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetArgs([]string{"validate", "--model", modelPath, "--html", htmlPath})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	if !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("error code = %v, want INVALID_KIND", errors.GetCode(err))
	}
}
