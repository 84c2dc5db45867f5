package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"one", "hello", 1, "…"},
		{"wide runes", "日本語テスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if Width(got) > tt.max {
				t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.max, Width(got))
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight truncation = %q", got)
	}
	if got := Width(PadRight("日本", 7)); got != 7 {
		t.Errorf("padded width = %d, want 7", got)
	}
}
