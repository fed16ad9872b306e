// Package iconset describes the macOS .iconset directory convention: which
// files go in it, how they are named and which .icns element each becomes.
package iconset

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeSpec pairs a file name inside the iconset with the edge length, in
// pixels, of the square image stored under that name.
type SizeSpec struct {
	Name   string `json:"name"`
	Pixels int    `json:"pixels"`
}

// Default returns the ten entries iconutil expects for a complete app icon,
// nominal sizes 16 through 512 at 1x and 2x. A fresh slice is returned on
// every call.
func Default() []SizeSpec {
	nominal := []int{16, 32, 128, 256, 512}
	out := make([]SizeSpec, 0, len(nominal)*2)
	for _, n := range nominal {
		out = append(out,
			SizeSpec{Name: FileName(n, 1), Pixels: n},
			SizeSpec{Name: FileName(n, 2), Pixels: n * 2},
		)
	}
	return out
}

// FileName returns the iconset name for a nominal size and display scale,
// e.g. FileName(16, 2) = "icon_16x16@2x.png".
func FileName(nominal, scale int) string {
	name := fmt.Sprintf("icon_%dx%d", nominal, nominal)
	if scale > 1 {
		name += fmt.Sprintf("@%dx", scale)
	}
	return name + ".png"
}

// ParseName is the inverse of FileName. ok is false for names outside the
// convention.
func ParseName(name string) (nominal, scale int, ok bool) {
	base, found := strings.CutPrefix(name, "icon_")
	if !found {
		return 0, 0, false
	}
	base, found = strings.CutSuffix(base, ".png")
	if !found {
		return 0, 0, false
	}
	scale = 1
	if i := strings.IndexByte(base, '@'); i >= 0 {
		s, found := strings.CutSuffix(base[i+1:], "x")
		if !found {
			return 0, 0, false
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return 0, 0, false
		}
		scale = v
		base = base[:i]
	}
	w, h, found := strings.Cut(base, "x")
	if !found || w != h {
		return 0, 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil || n < 1 {
		return 0, 0, false
	}
	return n, scale, true
}

// osTypes maps (nominal, scale) to the PNG-carrying .icns element type.
var osTypes = map[[2]int]string{
	{16, 1}:  "icp4",
	{16, 2}:  "ic11",
	{32, 1}:  "icp5",
	{32, 2}:  "ic12",
	{64, 1}:  "icp6",
	{128, 1}: "ic07",
	{128, 2}: "ic13",
	{256, 1}: "ic08",
	{256, 2}: "ic14",
	{512, 1}: "ic09",
	{512, 2}: "ic10",
}

// OSType returns the four-character .icns element type for an image of the
// given nominal size and scale.
func OSType(nominal, scale int) (string, bool) {
	t, ok := osTypes[[2]int{nominal, scale}]
	return t, ok
}

// Validate checks that every entry has a usable name and a positive size,
// and that no name appears twice.
func Validate(specs []SizeSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	seen := make(map[string]bool, len(specs))
	for i, s := range specs {
		if s.Name == "" {
			return fmt.Errorf("size %d: empty name", i+1)
		}
		if strings.ContainsAny(s.Name, `/\`) {
			return fmt.Errorf("size %d: name %q must not contain a path separator", i+1, s.Name)
		}
		if !strings.HasSuffix(s.Name, ".png") {
			return fmt.Errorf("size %d: name %q must end in .png", i+1, s.Name)
		}
		if s.Pixels <= 0 {
			return fmt.Errorf("size %d (%s): pixels must be positive, got %d", i+1, s.Name, s.Pixels)
		}
		if seen[s.Name] {
			return fmt.Errorf("size %d: duplicate name %q", i+1, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
