package util

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this string is too long", 10, "this st..."},
		{"anything", 3, "..."},
		{"anything", 0, "..."},
		{"héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestTruncateANSIPlain(t *testing.T) {
	if got := TruncateANSI("plain text", 20); got != "plain text" {
		t.Errorf("TruncateANSI should not modify strings within width, got %q", got)
	}
	if got := TruncateANSI("anything at all", 3); got != "..." {
		t.Errorf("TruncateANSI tiny width = %q, want ...", got)
	}
}
