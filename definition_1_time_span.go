package scheduler

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

// Offsets are minutes within one day window.
const (
	StartOfDay = int64(0)
	EndOfDay   = int64(24*60 - 1)
	DayLength  = EndOfDay + 1
)

// WholeDay is [StartOfDay, EndOfDay], end inclusive.
var WholeDay = TimeSpan{
	start: StartOfDay,
	end:   DayLength,
}

// TimeSpan is immutable.
// end is kept exclusive; a span closed on EndOfDay is stored with end = DayLength,
// which lets Overlaps and Contains stay single formulas.
type TimeSpan struct {
	start int64
	end   int64
}

type ParamsNewTimeSpan struct {
	TimeStart int64
	TimeEnd   int64

	IsEndInclusive bool
}

func (params *ParamsNewTimeSpan) IsValid() error {
	if params.TimeStart < StartOfDay {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - ParamsNewTimeSpan",
			InputName:  "TimeStart",
			InputValue: params.TimeStart,
			Issue: goerrors.ErrNegativeInput{
				InputName: "TimeStart",
			},
		}
	}

	end := ternary(params.IsEndInclusive, params.TimeEnd+1, params.TimeEnd)

	if params.TimeStart >= end {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - ParamsNewTimeSpan",
			InputName:  "TimeEnd",
			InputValue: params.TimeEnd,
			Issue: errors.New(
				"time start greater or equal to time end",
			),
		}
	}

	if end > DayLength {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - ParamsNewTimeSpan",
			InputName:  "TimeEnd",
			InputValue: params.TimeEnd,
			Issue: fmt.Errorf(
				"time end past end of day (%d)",
				EndOfDay,
			),
		}
	}

	return nil
}

func NewTimeSpan(params *ParamsNewTimeSpan) (TimeSpan, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return TimeSpan{},
			errValidation
	}

	return TimeSpan{
			start: params.TimeStart,
			end:   ternary(params.IsEndInclusive, params.TimeEnd+1, params.TimeEnd),
		},
		nil
}

// FromStartEnd builds a span from its bounds.
// When inclusive is true the end minute itself belongs to the span.
func FromStartEnd(timeStart, timeEnd int64, inclusive bool) (TimeSpan, error) {
	return NewTimeSpan(
		&ParamsNewTimeSpan{
			TimeStart:      timeStart,
			TimeEnd:        timeEnd,
			IsEndInclusive: inclusive,
		},
	)
}

func FromStartDuration(timeStart, duration int64) (TimeSpan, error) {
	return NewTimeSpan(
		&ParamsNewTimeSpan{
			TimeStart: timeStart,
			TimeEnd:   timeStart + duration,
		},
	)
}

// MinutesOf returns the day offset of hours:minutes.
func MinutesOf(hours, minutes int64) int64 {
	return hours*60 + minutes
}

func (span TimeSpan) Start() int64 {
	return span.start
}

// End is exclusive.
func (span TimeSpan) End() int64 {
	return span.end
}

func (span TimeSpan) Duration() int64 {
	return span.end - span.start
}

// IsDayBoundaryInclusive reports whether the span is closed on EndOfDay.
func (span TimeSpan) IsDayBoundaryInclusive() bool {
	return span.end == DayLength
}

func (span TimeSpan) Overlaps(other TimeSpan) bool {
	return span.start < other.end && other.start < span.end
}

func (span TimeSpan) Contains(other TimeSpan) bool {
	return span.start <= other.start && other.end <= span.end
}

func (span TimeSpan) String() string {
	if span.IsDayBoundaryInclusive() {
		return fmt.Sprintf(
			"[%s, %s]",

			formatMinutes(span.start),
			formatMinutes(EndOfDay),
		)
	}

	return fmt.Sprintf(
		"[%s, %s)",

		formatMinutes(span.start),
		formatMinutes(span.end),
	)
}

func formatMinutes(offset int64) string {
	return fmt.Sprintf(
		"%02d:%02d",

		offset/60,
		offset%60,
	)
}
