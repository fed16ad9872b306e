package tmpl

import (
	"strconv"
	"strings"
)

// Vars holds the values substituted into a drawing-program template.
type Vars struct {
	Size int
	Path string
}

// Expand replaces template placeholders in s with runtime values.
// {size} → edge length in pixels, {path} → destination path as-is.
// Callers embedding {path} in a string literal escape it first.
func Expand(s string, vars Vars) string {
	return strings.NewReplacer(
		"{size}", strconv.Itoa(vars.Size),
		"{path}", vars.Path,
	).Replace(s)
}

// EscapeSwift escapes backslashes, double quotes and line breaks for safe
// embedding inside a Swift double-quoted string literal.
func EscapeSwift(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	).Replace(s)
}
