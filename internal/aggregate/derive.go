package aggregate

import (
	"fmt"
	"math"
)

// doubleDigitThreshold is the per-category cutoff for double-doubles.
const doubleDigitThreshold = 10

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// shootingPct is made/attempted, zero when nothing was attempted.
func shootingPct(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return round3(float64(made) / float64(attempted))
}

// effectiveFGPct weights three-pointers at 1.5 field goals.
func effectiveFGPct(fgMade, threeMade, fgAttempted int) float64 {
	if fgAttempted == 0 {
		return 0
	}
	return round3((float64(fgMade) + 0.5*float64(threeMade)) / float64(fgAttempted))
}

// trueShootingPct is points over twice the true shot attempts, where a free
// throw trip counts as 0.44 attempts.
func trueShootingPct(points, fgAttempted, ftAttempted int) float64 {
	denom := 2 * (float64(fgAttempted) + 0.44*float64(ftAttempted))
	if denom == 0 {
		return 0
	}
	return round3(float64(points) / denom)
}

// doubleDigitCategories lists the categories at or above the double-digit
// threshold, in the fixed pts/reb/ast/stl/blk order.
func doubleDigitCategories(points, rebounds, assists, steals, blocks int) []string {
	var cats []string
	if points >= doubleDigitThreshold {
		cats = append(cats, "pts")
	}
	if rebounds >= doubleDigitThreshold {
		cats = append(cats, "reb")
	}
	if assists >= doubleDigitThreshold {
		cats = append(cats, "ast")
	}
	if steals >= doubleDigitThreshold {
		cats = append(cats, "stl")
	}
	if blocks >= doubleDigitThreshold {
		cats = append(cats, "blk")
	}
	return cats
}

// splits renders a made/attempted pair as "7/15".
func splits(made, attempted int) string {
	return fmt.Sprintf("%d/%d", made, attempted)
}
