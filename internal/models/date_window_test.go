package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateWindow_SwapsOutOfOrder(t *testing.T) {
	w := NewDateWindow(date(2025, time.March, 10), date(2025, time.March, 1))

	assert.Equal(t, date(2025, time.March, 1), w.Start)
	assert.Equal(t, date(2025, time.March, 10), w.End)
}

func TestNewDateWindow_TruncatesToMidnight(t *testing.T) {
	noon := time.Date(2025, time.March, 1, 12, 30, 45, 0, time.UTC)
	w := NewDateWindow(noon, noon)

	assert.Equal(t, date(2025, time.March, 1), w.Start)
	assert.Equal(t, w.Start, w.End)
}

func TestDateWindow_Overlaps(t *testing.T) {
	jan := NewDateWindow(date(2025, time.January, 1), date(2025, time.January, 31))
	feb := NewDateWindow(date(2025, time.February, 1), date(2025, time.February, 28))
	midJan := SingleDayWindow(date(2025, time.January, 15))

	assert.True(t, jan.Overlaps(jan), "window overlaps itself")
	assert.True(t, jan.Overlaps(midJan))
	assert.True(t, midJan.Overlaps(jan), "overlap is symmetric")
	assert.False(t, jan.Overlaps(feb))
	assert.False(t, feb.Overlaps(jan))
}

func TestDateWindow_OverlapsSharedBoundaryDay(t *testing.T) {
	first := NewDateWindow(date(2025, time.January, 1), date(2025, time.January, 10))
	second := NewDateWindow(date(2025, time.January, 10), date(2025, time.January, 20))

	assert.True(t, first.Overlaps(second), "inclusive ranges share the boundary day")
}

func TestSingleDayWindow(t *testing.T) {
	w := SingleDayWindow(time.Date(2025, time.June, 5, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, date(2025, time.June, 5), w.Start)
	assert.Equal(t, w.Start, w.End)
}
