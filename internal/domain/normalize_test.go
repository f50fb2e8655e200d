package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  sh  ", want: "sh"},
		{name: "lowercase", input: "Short A", want: "short a"},
		{name: "compress multiple spaces", input: "m   spelled  mm", want: "m spelled mm"},
		{name: "slashes preserved", input: "/SH/", want: "/sh/"},
		{name: "underscores preserved", input: "a_E", want: "a_e"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and newlines", input: "\t long\n\ne \t", want: "long e"},
		{name: "diacritics preserved", input: "/Ā/", want: "/ā/"},
		{name: "decomposed breve composed", input: "ă", want: "ă"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripSlashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "/sh/", want: "sh"},
		{input: "sh", want: "sh"},
		{input: " /a/ ", want: "a"},
		{input: "/sh", want: "sh"},
		{input: "//", want: ""},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := StripSlashes(tt.input); got != tt.want {
				t.Errorf("StripSlashes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
