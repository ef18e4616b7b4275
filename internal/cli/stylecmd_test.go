package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pubkit/pubfig/pkg/figure/styles"
)

func TestStyleCmdInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")

	cmd := newStyleCmd()
	cmd.SetArgs([]string{"--init", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("style --init error: %v", err)
	}

	loaded, err := styles.Load(path)
	if err != nil {
		t.Fatalf("Load() of written config error: %v", err)
	}
	if loaded != styles.Default() {
		t.Errorf("written config = %+v, want defaults", loaded)
	}
}

func TestStyleCmdInitScaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")

	cmd := newStyleCmd()
	cmd.SetArgs([]string{"--init", path, "--font-scale", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("style --init error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "base_size = 24.0") {
		t.Errorf("written config should carry the scaled base size, got:\n%s", data)
	}
}

func TestStyleCmdRejectsBadScale(t *testing.T) {
	cmd := newStyleCmd()
	cmd.SetArgs([]string{"--font-scale", "0"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("style --font-scale 0 should fail")
	}
}
