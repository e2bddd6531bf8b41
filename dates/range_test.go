package dates_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primkit/dates"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange(t *testing.T) {
	r, err := dates.NewDateRange(day(1), day(4))
	require.NoError(t, err)

	assert.True(t, r.Contains(day(1)))
	assert.True(t, r.Contains(day(3).Add(23*time.Hour)))
	assert.False(t, r.Contains(day(4)))
	assert.Equal(t, 72*time.Hour, r.Duration())
	assert.Equal(t, 3, r.Days())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, "[2024-03-01T00:00:00Z, 2024-03-04T00:00:00Z)", r.String())

	_, err = dates.NewDateRange(day(4), day(1))
	assert.ErrorIs(t, err, dates.ErrInvalidRange)

	empty, err := dates.NewDateRange(day(2), day(2))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.Contains(day(2)))
}

func TestDateRange_Overlap(t *testing.T) {
	a, _ := dates.NewDateRange(day(1), day(5))
	b, _ := dates.NewDateRange(day(3), day(8))
	c, _ := dates.NewDateRange(day(5), day(6))

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "half-open ranges that touch do not overlap")

	in, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, day(3), in.Start)
	assert.Equal(t, day(5), in.End)

	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestDateRange_Each(t *testing.T) {
	r, _ := dates.DaysFrom(day(1).Add(15*time.Hour), 3)
	assert.Equal(t, day(1), r.Start)

	assert.Equal(t, []time.Time{day(1), day(2), day(3)}, slices.Collect(r.Each(24*time.Hour)))
	assert.Equal(t, []time.Time{day(1), day(2), day(3)}, slices.Collect(r.EachDay()))
	assert.Empty(t, slices.Collect(r.Each(0)))

	var first []time.Time
	for d := range r.Each(time.Hour) {
		first = append(first, d)
		if len(first) == 2 {
			break
		}
	}
	assert.Len(t, first, 2)
}

func TestDateRange_Text(t *testing.T) {
	r, _ := dates.NewDateRange(day(1), day(2).Add(90*time.Minute))
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T00:00:00Z/2024-03-02T01:30:00Z", string(text))

	var back dates.DateRange
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Start.Equal(r.Start))
	assert.True(t, back.End.Equal(r.End))

	for _, bad := range []string{"2024-03-01", "x/2024-03-01T00:00:00Z", "2024-03-02T00:00:00Z/2024-03-01T00:00:00Z"} {
		assert.ErrorIs(t, back.UnmarshalText([]byte(bad)), dates.ErrInvalidRange, bad)
	}
}
