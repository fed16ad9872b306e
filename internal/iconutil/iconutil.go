package iconutil

import (
	"context"
	"fmt"
	"os/exec"
)

// Tool is the platform packaging command. Overridable for tests.
var Tool = "iconutil"

// Available reports whether the packaging tool is on PATH.
func Available() bool {
	_, err := exec.LookPath(Tool)
	return err == nil
}

// Packager converts an .iconset directory to .icns with iconutil.
type Packager struct{}

// Package runs `iconutil -c icns <iconsetDir> -o <outPath>`.
// Returns an error if iconutil is not found on PATH.
func (Packager) Package(ctx context.Context, iconsetDir, outPath string) error {
	if _, err := exec.LookPath(Tool); err != nil {
		return fmt.Errorf("%s not found on PATH (required for the iconutil packager): %w", Tool, err)
	}
	cmd := exec.CommandContext(ctx, Tool, "-c", "icns", iconsetDir, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s -c icns %s -o %s: %w\n%s", Tool, iconsetDir, outPath, err, out)
	}
	return nil
}
