package corpus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFloorToWeek(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		weekStart time.Weekday
		expected  time.Time
	}{
		{
			name:      "wednesday floors to monday",
			input:     date(2018, time.January, 3),
			weekStart: time.Monday,
			expected:  date(2018, time.January, 1),
		},
		{
			name:      "monday is its own week start",
			input:     date(2018, time.January, 1),
			weekStart: time.Monday,
			expected:  date(2018, time.January, 1),
		},
		{
			name:      "sunday belongs to the previous monday week",
			input:     date(2018, time.January, 7),
			weekStart: time.Monday,
			expected:  date(2018, time.January, 1),
		},
		{
			name:      "sunday start convention",
			input:     date(2018, time.January, 3),
			weekStart: time.Sunday,
			expected:  date(2017, time.December, 31),
		},
		{
			name:      "time of day is discarded",
			input:     time.Date(2018, time.January, 3, 17, 45, 12, 0, time.UTC),
			weekStart: time.Monday,
			expected:  date(2018, time.January, 1),
		},
		{
			name:      "zoned timestamp floors to the same UTC week",
			input:     time.Date(2018, time.January, 5, 10, 0, 0, 0, time.FixedZone("", 2*60*60)),
			weekStart: time.Monday,
			expected:  date(2018, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloorToWeek(tt.input, tt.weekStart))
		})
	}
}

func TestGroupKeyLabelRoundTrip(t *testing.T) {
	key := GroupKey{Author: "alice", Week: date(2018, time.January, 1)}
	assert.Equal(t, "alice|2018-01-01", key.Label())

	parsed, err := ParseGroupLabel(key.Label())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestGroupKeyAuthorOnlyLabel(t *testing.T) {
	key := GroupKey{Author: "alice"}
	assert.Equal(t, "alice", key.Label())

	parsed, err := ParseGroupLabel("alice")
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseGroupLabelSeparatorInAuthor(t *testing.T) {
	// The last separator anchors the fixed-width date, so authors containing
	// the separator still round-trip.
	key := GroupKey{Author: "a|b", Week: date(2018, time.January, 1)}
	parsed, err := ParseGroupLabel(key.Label())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseGroupLabelErrors(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"empty", ""},
		{"missing author", "|2018-01-01"},
		{"short date", "alice|2018-1-1"},
		{"garbage date", "alice|not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGroupLabel(tt.label)
			assert.ErrorIs(t, err, ErrorLabelParse)
		})
	}
}

func TestGroupByAuthor(t *testing.T) {
	c := New([]Document{
		{Author: "bob", Text: "first", Timestamp: date(2018, time.January, 1)},
		{Author: "alice", Text: "second", Timestamp: date(2018, time.January, 2)},
		{Author: "bob", Text: "third", Timestamp: date(2018, time.January, 3)},
	})

	groups, err := c.GroupByAuthor()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "alice", groups[0].Key.Author)
	assert.Equal(t, "bob", groups[1].Key.Author)
	assert.Equal(t, "first third", groups[1].Text())
}

func TestGroupByAuthorWeek(t *testing.T) {
	c := New([]Document{
		{Author: "alice", Text: "week one", Timestamp: date(2018, time.January, 3)},
		{Author: "alice", Text: "also week one", Timestamp: date(2018, time.January, 5)},
		{Author: "alice", Text: "week two", Timestamp: date(2018, time.January, 10)},
	})

	groups, err := c.GroupByAuthorWeek(time.Monday)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, date(2018, time.January, 1), groups[0].Key.Week)
	assert.Len(t, groups[0].Documents, 2)
	assert.Equal(t, date(2018, time.January, 8), groups[1].Key.Week)
}

func TestGroupByAuthorWeekMixedZoneRepresentations(t *testing.T) {
	// Both timestamps fall in the week of 2018-01-01 even though one carries
	// a zone offset; the week key must not fragment the group.
	c := New([]Document{
		{Author: "alice", Text: "first", Timestamp: time.Date(2018, time.January, 3, 10, 0, 0, 0, time.UTC)},
		{Author: "alice", Text: "second", Timestamp: time.Date(2018, time.January, 5, 10, 0, 0, 0, time.FixedZone("", 2*60*60))},
	})

	groups, err := c.GroupByAuthorWeek(time.Monday)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, date(2018, time.January, 1), groups[0].Key.Week)
	assert.Len(t, groups[0].Documents, 2)
}

func TestGroupByAuthorEmptyCorpus(t *testing.T) {
	_, err := New(nil).GroupByAuthor()
	assert.ErrorIs(t, err, ErrorEmptyCorpus)
}
