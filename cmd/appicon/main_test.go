package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/appicon/internal/config"
)

func TestParseArgsNone(t *testing.T) {
	opts, cmd, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cmd != "" || opts != (options{}) {
		t.Errorf("parseArgs(nil) = %+v, %q", opts, cmd)
	}
}

func TestParseArgsFlags(t *testing.T) {
	opts, cmd, err := parseArgs([]string{
		"-c", "appicon.json", "--renderer", "svg", "-p", "native",
		"--ico", "out/App.ico", "--svg", "out/App.svg",
	})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	want := options{
		configPath: "appicon.json",
		renderer:   "svg",
		packager:   "native",
		ico:        "out/App.ico",
		svg:        "out/App.svg",
	}
	if opts != want {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}
	if cmd != "" {
		t.Errorf("cmd = %q, want empty", cmd)
	}
}

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		arg, want string
	}{
		{"help", "help"},
		{"-h", "help"},
		{"--help", "help"},
		{"version", "version"},
		{"-V", "version"},
		{"--version", "version"},
	}
	for _, tt := range tests {
		_, cmd, err := parseArgs([]string{tt.arg})
		if err != nil || cmd != tt.want {
			t.Errorf("parseArgs(%q) = %q, %v; want %q", tt.arg, cmd, err, tt.want)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := [][]string{
		{"--config"},
		{"-r"},
		{"--packager"},
		{"--ico"},
		{"--svg"},
		{"build"},
		{"--volume", "50"},
	}
	for _, args := range tests {
		if _, _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) = nil error", args)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, options{renderer: "swift", ico: "a.ico"})
	if cfg.Renderer != "swift" || cfg.ICOPath != "a.ico" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Packager != config.PackagerAuto || cfg.SVGPath != "" {
		t.Errorf("empty overrides changed cfg: %+v", cfg)
	}
}

func writeConfig(t *testing.T, root, extra string) string {
	t.Helper()
	p := filepath.Join(root, "appicon.json")
	body := `{
		"iconset_dir": "` + filepath.ToSlash(filepath.Join(root, "build", "AppIcon.iconset")) + `",
		"output": "` + filepath.ToSlash(filepath.Join(root, "Resources", "AppIcon.icns")) + `"` + extra + `
	}`
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunNativePipeline(t *testing.T) {
	root := t.TempDir()
	opts := options{configPath: writeConfig(t, root, ""), packager: "native"}
	var out bytes.Buffer

	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Resources", "AppIcon.icns")); err != nil {
		t.Errorf("bundle missing: %v", err)
	}
	if !strings.HasSuffix(out.String(), "AppIcon.icns\n") || !strings.Contains(out.String(), "Done: ") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunRejectsBadOverride(t *testing.T) {
	root := t.TempDir()
	opts := options{configPath: writeConfig(t, root, ""), renderer: "blender"}
	err := run(context.Background(), opts, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown renderer") {
		t.Fatalf("expected renderer error, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "build")); !os.IsNotExist(err) {
		t.Error("directories created despite invalid options")
	}
}

func TestRunRejectsBadConfigValue(t *testing.T) {
	root := t.TempDir()
	opts := options{configPath: writeConfig(t, root, `, "renderer": "blender"`)}
	err := run(context.Background(), opts, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown renderer") {
		t.Fatalf("expected renderer error, got: %v", err)
	}
}

func TestRunOverrideFixesConfigValue(t *testing.T) {
	root := t.TempDir()
	opts := options{
		configPath: writeConfig(t, root, `, "renderer": "blender"`),
		renderer:   "native",
		packager:   "native",
	}
	if err := run(context.Background(), opts, &bytes.Buffer{}); err != nil {
		t.Fatalf("override should replace the bad value before validation: %v", err)
	}
}

func TestRunMissingConfig(t *testing.T) {
	err := run(context.Background(), options{configPath: filepath.Join(t.TempDir(), "nope.json")}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}
