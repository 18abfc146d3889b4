package parser

import "slices"

// IntSerial reports whether ints is a gapless ascending integer run
// (e.g. 4,5,6). When sortFirst is true the values are sorted before the
// check, so any permutation of a gapless run passes. An empty slice is
// trivially serial.
func IntSerial(ints []int, sortFirst bool) bool {
	vals := slices.Clone(ints)
	if sortFirst {
		slices.Sort(vals)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1]+1 {
			return false
		}
	}
	return true
}
