package sender

import (
	"strings"
	"testing"
)

func TestSegmentCount(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{"", 0},
		{"Dinner at six", 1},
		{strings.Repeat("a", 160), 1},
		{strings.Repeat("a", 161), 2},
		{strings.Repeat("a", 306), 2},
		{strings.Repeat("a", 307), 3},
	}
	for _, c := range cases {
		if got := SegmentCount(c.body); got != c.want {
			t.Errorf("SegmentCount(len %d) = %d, want %d", len(c.body), got, c.want)
		}
	}
}
