package shape

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/layout"
)

// mapDirection converts a layout direction to go-text's di.Direction.
func mapDirection(d layout.Direction) di.Direction {
	switch d {
	case layout.DirectionRTL:
		return di.DirectionRTL
	case layout.DirectionTTB:
		return di.DirectionTTB
	case layout.DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
