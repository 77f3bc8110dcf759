package scheduler

import (
	goerrors "github.com/TudorHulban/go-errors"
	"go.uber.org/zap"
)

type SelectedCandidates string

const (
	SelectedOptional  = SelectedCandidates("optional")
	SelectedMandatory = SelectedCandidates("mandatory")
)

// FindMeetingQuery holds no per query state, it can be shared between goroutines.
type FindMeetingQuery struct {
	logger *zap.Logger
}

type ParamsNewFindMeetingQuery struct {
	Logger *zap.Logger
}

func NewFindMeetingQuery(params *ParamsNewFindMeetingQuery) *FindMeetingQuery {
	if params == nil || params.Logger == nil {
		return &FindMeetingQuery{
			logger: zap.NewNop(),
		}
	}

	return &FindMeetingQuery{
		logger: params.Logger,
	}
}

type ResponseQuery struct {
	// MandatoryCandidates work for every mandatory attendee.
	MandatoryCandidates []TimeSpan

	// OptionalCandidates work for every mandatory and every optional attendee.
	OptionalCandidates []TimeSpan

	Selected   []TimeSpan
	SelectedIs SelectedCandidates
}

// Query returns the free spans of at least request.Duration minutes,
// sorted ascending by start.
// Spans free for mandatory plus optional attendees are preferred,
// falling back to mandatory only when none exist.
//
// A nil request yields an error, no slot found yields an empty, non nil slice.
// Nil events are treated as no events.
func (q *FindMeetingQuery) Query(events []*Event, request *MeetingRequest) ([]TimeSpan, error) {
	response, errQuery := q.QueryDetailed(events, request)
	if errQuery != nil {
		return nil,
			errQuery
	}

	return response.Selected,
		nil
}

func (q *FindMeetingQuery) QueryDetailed(events []*Event, request *MeetingRequest) (*ResponseQuery, error) {
	if request == nil {
		return nil,
			goerrors.ErrNilInput{
				InputName: "request",
			}
	}

	mandatoryFree, optionalFree := q.registerRelevantEvents(events, request)

	response := ResponseQuery{
		MandatoryCandidates: mandatoryFree.FilterByDuration(request.Duration),
		OptionalCandidates:  optionalFree.FilterByDuration(request.Duration),
	}

	if len(response.OptionalCandidates) > 0 {
		response.Selected = response.OptionalCandidates
		response.SelectedIs = SelectedOptional
	} else {
		response.Selected = response.MandatoryCandidates
		response.SelectedIs = SelectedMandatory
	}

	q.logger.Debug(
		"meeting query",

		zap.Int("events", len(events)),
		zap.Int64("duration", request.Duration),
		zap.Int("mandatory candidates", len(response.MandatoryCandidates)),
		zap.Int("optional candidates", len(response.OptionalCandidates)),
		zap.String("selected", string(response.SelectedIs)),
	)

	return &response,
		nil
}

// registerRelevantEvents returns the free time of the mandatory attendees
// and the free time of mandatory plus optional attendees.
func (q *FindMeetingQuery) registerRelevantEvents(events []*Event, request *MeetingRequest) (FreeTimeTable, FreeTimeTable) {
	mandatoryFree := NewFreeTimeTable()
	optionalFree := NewFreeTimeTable()

	for _, event := range events {
		if event == nil {
			continue
		}

		// an attendee listed in both sets counts as mandatory.
		if event.IsAttendedByAnyOf(request.Mandatory) {
			mandatoryFree = mandatoryFree.Subtract(event.When)
			optionalFree = optionalFree.Subtract(event.When)

			q.logger.Debug(
				"event blocks mandatory attendees",

				zap.String("event", event.Name),
				zap.Stringer("when", event.When),
			)

			continue
		}

		if event.IsAttendedByAnyOf(request.Optional) {
			optionalFree = optionalFree.Subtract(event.When)

			q.logger.Debug(
				"event blocks optional attendees",

				zap.String("event", event.Name),
				zap.Stringer("when", event.When),
			)
		}
	}

	return mandatoryFree,
		optionalFree
}
