package services

import "testing"

func TestRoundUpAverage(t *testing.T) {
	cases := []struct {
		name  string
		sum   int64
		count int64
		want  int
	}{
		{"no orders", 0, 0, 0},
		{"all zero ratings", 0, 2, 0},
		{"exact integer mean", 6, 2, 3},
		{"half rounds up", 7, 2, 4},
		{"third rounds up", 10, 3, 4},
		{"just above integer rounds up", 31, 10, 4},
		{"single rating", 3, 1, 3},
		{"max rating", 5, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundUpAverage(tc.sum, tc.count); got != tc.want {
				t.Errorf("RoundUpAverage(%d, %d) = %d, want %d", tc.sum, tc.count, got, tc.want)
			}
		})
	}
}
