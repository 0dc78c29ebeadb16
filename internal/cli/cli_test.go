package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/lwcharts/pkg/errors"
)

const testDefinition = `
charts:
  - id: eth
    options:
      height: 320
    series:
      - type: area
        data:
          - {time: 2024-01-01, value: 1}
          - {time: 2024-01-02, value: 2}
        options:
          title: ether
          paneId: 1
      - type: line
        data:
          - {time: 2024-01-01, value: 3}
`

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out, errOut bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.yaml")
	if err := os.WriteFile(path, []byte(testDefinition), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolateStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(envStore, "file")
	t.Setenv(envStoreDir, dir)
	t.Setenv(envNamespace, "")
	return dir
}

func TestBuildCommandStdout(t *testing.T) {
	out, err := runCLI(t, "build", writeDefinition(t))
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("stdout is not a JSON document: %v\n%s", err, out)
	}
	charts := doc["charts"].([]any)
	if id := charts[0].(map[string]any)["chartId"]; id != "eth" {
		t.Errorf("chartId = %v, want eth", id)
	}
}

func TestBuildCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, err := runCLI(t, "build", writeDefinition(t), "-o", path, "--indent")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"charts\"")) {
		t.Errorf("output is not indented:\n%s", data)
	}
	for _, want := range []string{"Built", "1 charts", "2 series", "local", path} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBuildCommandPublish(t *testing.T) {
	isolateStore(t)
	def := writeDefinition(t)

	out, err := runCLI(t, "build", def, "--publish")
	if err != nil {
		t.Fatalf("build --publish error: %v", err)
	}
	if !strings.Contains(out, "published") || !strings.Contains(out, "document:eth") {
		t.Errorf("first publish output:\n%s", out)
	}

	out, err = runCLI(t, "build", def, "--publish")
	if err != nil {
		t.Fatalf("second publish error: %v", err)
	}
	if !strings.Contains(out, "unchanged") {
		t.Errorf("second publish should be unchanged:\n%s", out)
	}

	out, err = runCLI(t, "store", "get", "eth")
	if err != nil {
		t.Fatalf("store get error: %v", err)
	}
	if !strings.Contains(out, `"chartId":"eth"`) {
		t.Errorf("store get = %s", out)
	}

	if _, err := runCLI(t, "store", "delete", "eth"); err != nil {
		t.Fatalf("store delete error: %v", err)
	}
	if _, err := runCLI(t, "store", "get", "eth"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("store get after delete error = %v, want NOT_FOUND", err)
	}
}

func TestBuildCommandErrors(t *testing.T) {
	if _, err := runCLI(t, "build"); err == nil {
		t.Error("build without args should fail")
	}
	_, err := runCLI(t, "build", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("build(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestInspectCommand(t *testing.T) {
	out, err := runCLI(t, "inspect", writeDefinition(t))
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"eth", "pane", "line", "area", "ether"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
	// The pane 0 line series renders before the pane 1 area series.
	if strings.Index(out, "line") > strings.Index(out, "area") {
		t.Errorf("series out of render order:\n%s", out)
	}
}

func TestCaseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"to camel", []string{"case", "price_scale_id", "line_width"}, "priceScaleId\nlineWidth\n", false},
		{"to snake", []string{"case", "--to", "snake", "priceScaleId"}, "price_scale_id\n", false},
		{"unknown target", []string{"case", "--to", "kebab", "x"}, "", true},
		{"no identifiers", []string{"case"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaseCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	doc := `{"price_scale": {"line_width": 2}, "top_level": [{"z_index": 1}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "case", "--file", path)
	if err != nil {
		t.Fatalf("case --file error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if _, ok := got["priceScale"].(map[string]any)["lineWidth"]; !ok {
		t.Errorf("nested key not converted: %s", out)
	}
	if _, ok := got["topLevel"].([]any)[0].(map[string]any)["zIndex"]; !ok {
		t.Errorf("key inside list not converted: %s", out)
	}

	out, err = runCLI(t, "case", "--file", path, "--shallow")
	if err != nil {
		t.Fatalf("case --shallow error: %v", err)
	}
	if !strings.Contains(out, "priceScale") || !strings.Contains(out, "line_width") {
		t.Errorf("shallow conversion = %s", out)
	}
}

func TestStorePathCommand(t *testing.T) {
	dir := isolateStore(t)
	out, err := runCLI(t, "store", "path")
	if err != nil {
		t.Fatalf("store path error: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("store path = %q, want %q", out, dir)
	}

	if _, err := runCLI(t, "store", "path", "--store", "memory"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("store path (memory) error = %v, want UNSUPPORTED", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "lwcharts") {
		t.Error("bash completion should mention the command name")
	}
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestSetLogFile(t *testing.T) {
	var stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	path := filepath.Join(t.TempDir(), "logs", "lwcharts.log")
	c.SetLogFile(path)
	c.Logger.Info("hello file")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("hello file")) {
		t.Errorf("log file = %q", data)
	}
	if !strings.Contains(stderr.String(), "hello file") {
		t.Errorf("stderr = %q, want the message too", stderr.String())
	}
}
