package lists

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	var tests = []struct {
		name   string
		values []int
		want   string
	}{
		{"left_list", []int{3, 4, 2, 1, 3, 3}, "left_list = {3, 4, 2, 1, 3, 3};"},
		{"right_list", []int{-7}, "right_list = {-7};"},
		{"left_list", nil, "left_list = {};"},
	}
	for _, tt := range tests {
		if got := Format(tt.name, tt.values); got != tt.want {
			t.Errorf("Format(%q, %v): got %q want %q", tt.name, tt.values, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	l, err := Read(strings.NewReader(example))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"left_list = {3, 4, 2, 1, 3, 3};",
		"right_list = {4, 3, 5, 3, 9, 3};",
	}
	if diff := cmp.Diff(want, l.Lines()); diff != "" {
		t.Errorf("Lines: diff (-want +got):\n%s", diff)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, values := range [][]int{
		nil,
		{0},
		{1, -2, 3, 1 << 40, -(1 << 40)},
	} {
		name, got, err := ParseFormatted(Format("xs", values))
		if err != nil {
			t.Fatalf("ParseFormatted: %v", err)
		}
		if name != "xs" {
			t.Errorf("ParseFormatted: got name %q want %q", name, "xs")
		}
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("round trip of %v: diff (-want +got):\n%s", values, diff)
		}
	}
}

func TestParseFormattedErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"xs {1, 2};",
		"xs = 1, 2;",
		"xs = {1, 2}",
		"xs = {1,, 2};",
		"xs = {a};",
	} {
		if _, got, err := ParseFormatted(s); err == nil {
			t.Errorf("ParseFormatted(%q): got %v want error", s, got)
		}
	}
}
