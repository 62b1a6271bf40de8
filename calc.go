package teamcheck

import "math"

func sum(values []int64) (value int64) {
	for _, v := range values {
		value = value + v
	}
	return
}

// max returns math.MinInt64 for no values.
func max(values []int64) (value int64) {
	value = math.MinInt64
	for _, v := range values {
		if v > value {
			value = v
		}
	}
	return
}

// teams truncates toward zero.
func teams(total int64) int64 {
	return total / TeamSize
}
