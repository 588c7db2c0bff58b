package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkWindow(start, end string) Window {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return Window{Start: s, End: e}
}

func TestWindow_Overlaps(t *testing.T) {
	base := mkWindow("2025-03-01T09:00:00Z", "2025-03-03T09:00:00Z")

	t.Run("disjoint before", func(t *testing.T) {
		other := mkWindow("2025-02-20T00:00:00Z", "2025-02-25T00:00:00Z")
		assert.False(t, base.Overlaps(other))
		assert.False(t, other.Overlaps(base))
	})

	t.Run("disjoint after", func(t *testing.T) {
		other := mkWindow("2025-03-05T00:00:00Z", "2025-03-07T00:00:00Z")
		assert.False(t, base.Overlaps(other))
		assert.False(t, other.Overlaps(base))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		other := mkWindow("2025-03-03T09:00:00Z", "2025-03-05T09:00:00Z")
		assert.False(t, base.Overlaps(other))
		assert.False(t, other.Overlaps(base))
	})

	t.Run("partial overlap", func(t *testing.T) {
		other := mkWindow("2025-03-02T00:00:00Z", "2025-03-05T00:00:00Z")
		assert.True(t, base.Overlaps(other))
		assert.True(t, other.Overlaps(base))
	})

	t.Run("containment", func(t *testing.T) {
		inner := mkWindow("2025-03-01T12:00:00Z", "2025-03-02T12:00:00Z")
		assert.True(t, base.Overlaps(inner))
		assert.True(t, inner.Overlaps(base))
	})

	t.Run("identical windows", func(t *testing.T) {
		assert.True(t, base.Overlaps(base))
	})
}

func TestNormalizeWindow(t *testing.T) {
	start, _ := time.Parse(time.RFC3339, "2025-03-01T09:00:00Z")

	t.Run("valid window is unchanged", func(t *testing.T) {
		end := start.Add(48 * time.Hour)
		w, err := NormalizeWindow(start, end)
		assert.NoError(t, err)
		assert.Equal(t, start, w.Start)
		assert.Equal(t, end, w.End)
	})

	t.Run("end equal to start corrected to one day", func(t *testing.T) {
		w, err := NormalizeWindow(start, start)
		assert.NoError(t, err)
		assert.Equal(t, start.Add(24*time.Hour), w.End)
	})

	t.Run("end before start corrected to one day", func(t *testing.T) {
		w, err := NormalizeWindow(start, start.Add(-3*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, start.Add(24*time.Hour), w.End)
	})

	t.Run("zero start rejected", func(t *testing.T) {
		_, err := NormalizeWindow(time.Time{}, start)
		assert.Error(t, err)
	})
}

func TestCeilDays(t *testing.T) {
	start, _ := time.Parse(time.RFC3339, "2025-03-01T09:00:00Z")

	cases := []struct {
		name string
		dur  time.Duration
		want int64
	}{
		{"exactly one day", 24 * time.Hour, 1},
		{"exactly two days", 48 * time.Hour, 2},
		{"partial day rounds up", 25 * time.Hour, 2},
		{"few hours is one day", 3 * time.Hour, 1},
		{"two and a half days", 60 * time.Hour, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Window{Start: start, End: start.Add(tc.dur)}
			assert.Equal(t, tc.want, CeilDays(w))
		})
	}
}
