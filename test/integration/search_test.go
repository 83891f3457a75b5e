package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestIntegrationFlow(t *testing.T) {
	poem := writeFile(t, "poem.txt", "I'm nobody! Who are you?\r\nAre you nobody, too?\r\nThen there's a pair of us - don't tell!\r\nThey'd banish us, you know.\r\n")
	settings := writeFile(t, "minigrep.yaml", "case_insensitive: true\nlog_level: debug\n")

	env := func(string) (string, bool) { return "", false }
	var usage bytes.Buffer
	cfg, err := config.NewParser(&usage, env).Parse([]string{"minigrep", "--config", settings, "NOBODY", poem})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	var out bytes.Buffer
	if err := application.New(&out, zaptest.NewLogger(t)).Run(cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := "I'm nobody! Who are you?\nAre you nobody, too?\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}
