// mkicon writes a single app icon PNG, 256×256 unless a size is given.
// Usage: go run ./cmd/mkicon <output.png> [size]
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/appicon/internal/render"
)

const defaultSize = 256

func main() {
	path, size, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Usage: mkicon <output.png> [size]\n")
		os.Exit(1)
	}
	if err := (render.Native{}).Render(context.Background(), path, size); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%dx%d)\n", path, size, size)
}

func parseArgs(args []string) (string, int, error) {
	switch len(args) {
	case 1:
		return args[0], defaultSize, nil
	case 2:
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return "", 0, fmt.Errorf("size must be a positive integer, got %q", args[1])
		}
		return args[0], n, nil
	default:
		return "", 0, fmt.Errorf("expected <output.png> [size]")
	}
}
