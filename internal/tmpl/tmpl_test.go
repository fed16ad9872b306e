package tmpl

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		in   string
		vars Vars
		want string
	}{
		{"let size = {size}", Vars{Size: 64}, "let size = 64"},
		{`URL(fileURLWithPath: "{path}")`, Vars{Path: "/tmp/a.png"}, `URL(fileURLWithPath: "/tmp/a.png")`},
		{"{size}x{size}", Vars{Size: 16}, "16x16"},
		{"no placeholders", Vars{Size: 1, Path: "x"}, "no placeholders"},
		{"{Size} {unknown}", Vars{Size: 1}, "{Size} {unknown}"},
	}
	for _, tt := range tests {
		if got := Expand(tt.in, tt.vars); got != tt.want {
			t.Errorf("Expand(%q, %+v) = %q, want %q", tt.in, tt.vars, got, tt.want)
		}
	}
}

func TestExpandDoesNotRescan(t *testing.T) {
	got := Expand("{path}", Vars{Size: 8, Path: "{size}.png"})
	if got != "{size}.png" {
		t.Errorf("Expand = %q, want substituted value left untouched", got)
	}
}

func TestEscapeSwift(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/tmp/icon.png", "/tmp/icon.png"},
		{`say "hi"`, `say \"hi\"`},
		{`C:\icons\a.png`, `C:\\icons\\a.png`},
		{"a\nb", `a\nb`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeSwift(tt.in); got != tt.want {
			t.Errorf("EscapeSwift(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
