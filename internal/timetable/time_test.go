package timetable

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("accepts valid times", func(t *testing.T) {
		cases := []struct {
			input string
			want  TimeOfDay
		}{
			{"00:00", TimeOfDay{0, 0}},
			{"09:05", TimeOfDay{9, 5}},
			{"9:05", TimeOfDay{9, 5}},
			{"23:59", TimeOfDay{23, 59}},
			{" 12:30 ", TimeOfDay{12, 30}},
		}

		for _, tc := range cases {
			got, err := ParseTimeOfDay(tc.input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseTimeOfDay(%q) = %v, want %v", tc.input, got, tc.want)
			}
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		inputs := []string{"", "12", "12:34:56", "ab:cd", "12h30", "24:00", "12:60", "-1:00", "12:-5"}

		for _, input := range inputs {
			if _, err := ParseTimeOfDay(input); !errors.Is(err, ErrInvalidTime) {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTime", input, err)
			}
		}
	})

	t.Run("format round-trips to the normalized shape", func(t *testing.T) {
		cases := map[string]string{
			"9:05":  "09:05",
			"09:05": "09:05",
			"23:59": "23:59",
			"0:00":  "00:00",
		}

		for input, want := range cases {
			parsed, err := ParseTimeOfDay(input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned error: %v", input, err)
			}
			if got := parsed.String(); got != want {
				t.Fatalf("ParseTimeOfDay(%q).String() = %q, want %q", input, got, want)
			}
		}
	})
}

func TestTimeOfDayCompare(t *testing.T) {
	cases := []struct {
		a, b TimeOfDay
		want int
	}{
		{TimeOfDay{9, 0}, TimeOfDay{10, 0}, -1},
		{TimeOfDay{10, 0}, TimeOfDay{9, 59}, 1},
		{TimeOfDay{13, 37}, TimeOfDay{13, 37}, 0},
		{TimeOfDay{0, 59}, TimeOfDay{1, 0}, -1},
	}

	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTimeOfDayAddMinutes(t *testing.T) {
	cases := []struct {
		start TimeOfDay
		add   int
		want  TimeOfDay
	}{
		{TimeOfDay{9, 0}, 60, TimeOfDay{10, 0}},
		{TimeOfDay{9, 30}, 45, TimeOfDay{10, 15}},
		{TimeOfDay{23, 30}, 60, TimeOfDay{0, 30}},
		{TimeOfDay{0, 0}, 1, TimeOfDay{0, 1}},
		{TimeOfDay{10, 0}, 0, TimeOfDay{10, 0}},
	}

	for _, tc := range cases {
		if got := tc.start.AddMinutes(tc.add); got != tc.want {
			t.Fatalf("%v.AddMinutes(%d) = %v, want %v", tc.start, tc.add, got, tc.want)
		}
	}
}

func TestTimeOfDayOf(t *testing.T) {
	instant := time.Date(2025, time.September, 1, 21, 50, 12, 0, time.UTC)
	if got := TimeOfDayOf(instant); got != (TimeOfDay{21, 50}) {
		t.Fatalf("TimeOfDayOf = %v, want 21:50", got)
	}
}

func TestDurationString(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h00"},
		{10, "0h10"},
		{60, "1h00"},
		{125, "2h05"},
	}

	for _, tc := range cases {
		if got := durationFromMinutes(tc.minutes).String(); got != tc.want {
			t.Fatalf("durationFromMinutes(%d).String() = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
