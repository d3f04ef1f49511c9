package services

// RoundUpAverage returns the ceiling of sum/count, or 0 when count is zero.
// Ratings always round UP to the next integer (an average of 3.1 displays as
// 4). Both the creation-time snapshot and every projection go through this
// one function so the two can never diverge.
func RoundUpAverage(sum, count int64) int {
	if count == 0 {
		return 0
	}
	return int((sum + count - 1) / count)
}
