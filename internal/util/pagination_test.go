package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		size      int
		wantFrom  int
		wantLimit int
	}{
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -3, 25, 0, 25},
		{"zero size falls back to default", 2, 0, 10, DefaultPageSize},
		{"oversized size falls back to default", 1, 500, 0, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, limit := Calculate(tc.page, tc.size)
			require.Equal(t, tc.wantFrom, from)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, int64(3), TotalPages(25, 10))
	require.Equal(t, int64(1), TotalPages(10, 10))
	require.Equal(t, int64(1), TotalPages(1, 10))
	require.Equal(t, int64(0), TotalPages(0, 10))
	require.Equal(t, int64(0), TotalPages(25, 0))
}
