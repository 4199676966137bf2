package docx

import "math"

// twipsPerInch is the WordprocessingML length unit (1/20 pt).
const twipsPerInch = 1440

func inchesToTwips(in float64) int {
	return int(math.Round(in * twipsPerInch))
}

// pointsToHalfPoints converts a font size to the w:sz unit.
func pointsToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
