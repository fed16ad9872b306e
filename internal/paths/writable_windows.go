//go:build windows

package paths

import (
	"errors"

	"golang.org/x/sys/windows"
)

// probeWritable checks the read-only attribute. Windows ignores it on most
// directories, so this only catches explicitly locked-down folders.
func probeWritable(dir string) error {
	p, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return errors.New("read-only attribute set")
	}
	return nil
}
