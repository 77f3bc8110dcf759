package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	personA = "Person A"
	personB = "Person B"
	personC = "Person C"
)

var (
	time0800 = MinutesOf(8, 0)
	time0830 = MinutesOf(8, 30)
	time0900 = MinutesOf(9, 0)
	time0930 = MinutesOf(9, 30)
	time1000 = MinutesOf(10, 0)
	time1100 = MinutesOf(11, 0)
)

const (
	duration15Minutes = int64(15)
	duration30Minutes = int64(30)
	duration60Minutes = int64(60)
	duration90Minutes = int64(90)
	duration2Hours    = int64(120)
)

func spanStartEnd(t *testing.T, timeStart, timeEnd int64, inclusive bool) TimeSpan {
	t.Helper()

	span, errCr := FromStartEnd(timeStart, timeEnd, inclusive)
	require.NoError(t, errCr)

	return span
}

func spanStartDuration(t *testing.T, timeStart, duration int64) TimeSpan {
	t.Helper()

	span, errCr := FromStartDuration(timeStart, duration)
	require.NoError(t, errCr)

	return span
}

func newTestEvent(t *testing.T, name string, when TimeSpan, attendees ...string) *Event {
	t.Helper()

	event, errCr := NewEvent(
		&ParamsNewEvent{
			Name:      name,
			When:      when,
			Attendees: attendees,
		},
	)
	require.NoError(t, errCr)

	return event
}

func newTestRequest(t *testing.T, duration int64, mandatory []string, optional ...string) *MeetingRequest {
	t.Helper()

	request, errCr := NewMeetingRequest(
		&ParamsNewMeetingRequest{
			Mandatory: mandatory,
			Optional:  optional,
			Duration:  duration,
		},
	)
	require.NoError(t, errCr)

	return request
}
