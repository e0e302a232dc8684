package domain

// QuarterAt estimates the quarter number for a timeline position using
// fixed-length periods: floor(startMinutes / periodLength) + 1, capped
// at the final period. The estimate ignores stoppages and overtime and
// must be presented to users as approximate, never as ground truth.
func QuarterAt(startMs int64, periodLengthMin, periodCount int) int {
	if periodLengthMin <= 0 || periodCount <= 0 {
		return 1
	}
	if startMs < 0 {
		startMs = 0
	}
	q := int(startMs/(int64(periodLengthMin)*60000)) + 1
	if q > periodCount {
		q = periodCount
	}
	return q
}
