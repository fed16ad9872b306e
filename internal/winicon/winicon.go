// Package winicon writes the app icon as a Windows .ico file.
package winicon

import (
	"bytes"
	"fmt"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

// MaxSize is the largest edge length an ICO directory entry can describe.
const MaxSize = 256

// Write renders the icon at size and stores it at path as a single-image ICO.
func Write(path string, size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("ico size must be 1-%d, got %d", MaxSize, size)
	}
	var buf bytes.Buffer
	if err := ico.Encode(&buf, icon.Draw(size)); err != nil {
		return fmt.Errorf("encoding ico: %w", err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}
