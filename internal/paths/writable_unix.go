//go:build unix

package paths

import "golang.org/x/sys/unix"

func probeWritable(dir string) error {
	return unix.Access(dir, unix.W_OK)
}
