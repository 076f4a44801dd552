package layout

import "math"

// DefaultTabWidth is the tab width, in spaces, used when none is given.
const DefaultTabWidth = 4

// TabAdvance returns the advance of a tab whose pen sits at x, measured
// from the tab origin. Tab stops are every tabWidth spaces of width
// hspace. A tab always moves at least one space: when the next stop is
// closer than hspace it skips to the stop after.
func TabAdvance(hspace float64, tabWidth int, x float64) float64 {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	stop := hspace * float64(tabWidth)
	if stop <= 0 {
		return 0
	}
	advance := stop - math.Mod(x, stop)
	if advance < hspace {
		advance += stop
	}
	return advance
}
