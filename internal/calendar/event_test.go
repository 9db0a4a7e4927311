package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendeeSet(t *testing.T) {
	set := NewAttendeeSet("bob", "alice", "bob")

	require.Equal(t, 2, set.Len())
	require.True(t, set.Has("alice"))
	require.False(t, set.Has("carol"))
	require.Equal(t, []string{"alice", "bob"}, set.Slice())

	require.True(t, set.Intersects(NewAttendeeSet("carol", "bob")))
	require.False(t, set.Intersects(NewAttendeeSet("carol")))
	require.False(t, set.Intersects(NewAttendeeSet()))
	require.False(t, AttendeeSet{}.Intersects(set))

	require.Equal(t, []string{"alice", "bob", "carol"}, set.Union(NewAttendeeSet("carol")).Slice())
}

func TestEvent_Involves(t *testing.T) {
	e := NewEvent("standup", mustRange(t, 540, 555, false), "alice", "alice", "bob")

	require.Equal(t, []string{"alice", "bob"}, e.Attendees().Slice())
	require.True(t, e.Involves(NewAttendeeSet("bob")))
	require.False(t, e.Involves(NewAttendeeSet("carol")))

	empty := NewEvent("focus", mustRange(t, 600, 660, false))
	require.False(t, empty.Involves(NewAttendeeSet("alice")))
}

func TestNewMeetingRequest(t *testing.T) {
	type testcase struct {
		name     string
		duration int
		wantErr  bool
	}

	tests := [...]testcase{
		{name: "positive", duration: 30},
		{name: "longer than a day is still valid", duration: EndOfDay + 60},
		{name: "zero", duration: 0, wantErr: true},
		{name: "negative", duration: -15, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewMeetingRequest(tt.duration, []string{"alice"}, []string{"bob", "alice"})
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRequest)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.duration, req.Duration())
			require.Equal(t, []string{"alice"}, req.Attendees().Slice())
			require.Equal(t, []string{"alice", "bob"}, req.OptionalAttendees().Slice())
			require.Equal(t, []string{"alice", "bob"}, req.Everyone().Slice())
		})
	}

	require.ErrorIs(t, MeetingRequest{}.Validate(), ErrInvalidRequest)
}
