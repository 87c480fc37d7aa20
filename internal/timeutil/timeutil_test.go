package timeutil

import "testing"

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		secs float64
		mins int
		rem  int
	}{
		{1500, 25, 0},
		{1380, 23, 0},
		{1410.4, 23, 30},
		{59.6, 1, 0},
		{0, 0, 0},
	}

	for _, v := range cases {
		m, s := SecsToMinsAndSecs(v.secs)
		if m != v.mins || s != v.rem {
			t.Errorf(
				"SecsToMinsAndSecs(%v): expected %d:%d, but got %d:%d",
				v.secs, v.mins, v.rem, m, s,
			)
		}
	}
}

func TestClockFormat(t *testing.T) {
	if got := ClockFormat(true); got != "15:04:05" {
		t.Errorf("expected 24 hour layout, but got: %s", got)
	}

	if got := ClockFormat(false); got != "03:04:05 PM" {
		t.Errorf("expected 12 hour layout, but got: %s", got)
	}
}
