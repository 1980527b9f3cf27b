package timeutil

import "testing"

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT36M05.00S", 2165},
		{"PT1H05M00.00S", 3900},
		{"PT00M00.00S", 0},
		{"PT12M", 720},
		{"PT30S", 30},
		{"", 0},
		{"PT", 0},
		{"garbage", 0},
		{"36:05", 0},
	}
	for _, tc := range cases {
		if got := ParseISODuration(tc.in); got != tc.want {
			t.Fatalf("ParseISODuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{2165, "36:05"},
		{3180, "53:00"},
		{-5, "0:00"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.in); got != tc.want {
			t.Fatalf("FormatSeconds(%d) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatISODuration(t *testing.T) {
	if got := FormatISODuration("PT36M05.00S"); got != "36:05" {
		t.Fatalf("FormatISODuration = %s", got)
	}
	if got := FormatISODuration("bogus"); got != "0:00" {
		t.Fatalf("FormatISODuration malformed = %s, want 0:00", got)
	}
}
