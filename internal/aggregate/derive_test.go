package aggregate

import (
	"reflect"
	"testing"
)

func TestShootingPct(t *testing.T) {
	if got := shootingPct(7, 15); got != 0.467 {
		t.Fatalf("shootingPct = %v", got)
	}
	if got := shootingPct(0, 0); got != 0 {
		t.Fatalf("expected zero attempts to yield 0, got %v", got)
	}
}

func TestEffectiveFGPct(t *testing.T) {
	if got := effectiveFGPct(10, 4, 20); got != 0.6 {
		t.Fatalf("effectiveFGPct = %v", got)
	}
	if got := effectiveFGPct(0, 0, 0); got != 0 {
		t.Fatalf("expected zero attempts to yield 0, got %v", got)
	}
}

func TestTrueShootingPct(t *testing.T) {
	// 30 points on 20 FGA and 10 FTA: 30 / (2 * 24.4).
	if got := trueShootingPct(30, 20, 10); got != 0.615 {
		t.Fatalf("trueShootingPct = %v", got)
	}
	if got := trueShootingPct(0, 0, 0); got != 0 {
		t.Fatalf("expected zero attempts to yield 0, got %v", got)
	}
}

func TestDoubleDigitCategories(t *testing.T) {
	cases := []struct {
		name                string
		pts, reb, ast, stl, blk int
		want                []string
	}{
		{"triple double", 25, 12, 10, 1, 0, []string{"pts", "reb", "ast"}},
		{"double double with steals", 18, 4, 2, 10, 0, []string{"pts", "stl"}},
		{"nothing", 9, 9, 9, 9, 9, nil},
		{"five by five plus", 10, 10, 10, 10, 10, []string{"pts", "reb", "ast", "stl", "blk"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := doubleDigitCategories(tc.pts, tc.reb, tc.ast, tc.stl, tc.blk)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSplits(t *testing.T) {
	if got := splits(7, 15); got != "7/15" {
		t.Fatalf("splits = %q", got)
	}
}

func TestRounding(t *testing.T) {
	if got := round1(25.449); got != 25.4 {
		t.Fatalf("round1 = %v", got)
	}
	if got := round3(0.61837); got != 0.618 {
		t.Fatalf("round3 = %v", got)
	}
}
