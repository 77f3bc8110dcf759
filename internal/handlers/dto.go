package handlers

import (
	"fmt"

	scheduler "github.com/TudorHulban/meetings"
)

type TimeSpanDTO struct {
	Start        int64 `json:"start"`
	End          int64 `json:"end"`
	InclusiveEnd bool  `json:"inclusiveEnd,omitempty"`
}

type EventDTO struct {
	TimeSpanDTO

	Name      string   `json:"name"`
	Attendees []string `json:"attendees"`
}

type MeetingRequestDTO struct {
	Attendees         []string `json:"attendees"`
	OptionalAttendees []string `json:"optionalAttendees"`
	Duration          int64    `json:"duration"`
}

type QueryRequestDTO struct {
	Events  []EventDTO         `json:"events"`
	Request *MeetingRequestDTO `json:"request"`
}

type SlotDTO struct {
	TimeSpanDTO

	Duration int64 `json:"duration"`
}

type QueryResponseDTO struct {
	Slots    []SlotDTO `json:"slots"`
	Selected string    `json:"selected"`
}

func (dto *QueryRequestDTO) toDomain() ([]*scheduler.Event, *scheduler.MeetingRequest, error) {
	events := make([]*scheduler.Event, 0, len(dto.Events))

	for ix, eventDTO := range dto.Events {
		when, errSpan := scheduler.FromStartEnd(
			eventDTO.Start,
			eventDTO.End,
			eventDTO.InclusiveEnd,
		)
		if errSpan != nil {
			return nil,
				nil,
				fmt.Errorf("event %d: %w", ix, errSpan)
		}

		event, errEvent := scheduler.NewEvent(
			&scheduler.ParamsNewEvent{
				Name:      eventDTO.Name,
				When:      when,
				Attendees: eventDTO.Attendees,
			},
		)
		if errEvent != nil {
			return nil,
				nil,
				fmt.Errorf("event %d: %w", ix, errEvent)
		}

		events = append(events, event)
	}

	if dto.Request == nil {
		return events,
			nil,
			nil
	}

	request, errRequest := scheduler.NewMeetingRequest(
		&scheduler.ParamsNewMeetingRequest{
			Mandatory: dto.Request.Attendees,
			Optional:  dto.Request.OptionalAttendees,
			Duration:  dto.Request.Duration,
		},
	)
	if errRequest != nil {
		return nil,
			nil,
			fmt.Errorf("request: %w", errRequest)
	}

	return events,
		request,
		nil
}

func toSlotDTO(span scheduler.TimeSpan) SlotDTO {
	if span.IsDayBoundaryInclusive() {
		return SlotDTO{
			TimeSpanDTO: TimeSpanDTO{
				Start:        span.Start(),
				End:          scheduler.EndOfDay,
				InclusiveEnd: true,
			},
			Duration: span.Duration(),
		}
	}

	return SlotDTO{
		TimeSpanDTO: TimeSpanDTO{
			Start: span.Start(),
			End:   span.End(),
		},
		Duration: span.Duration(),
	}
}
