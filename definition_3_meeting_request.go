package scheduler

import (
	goerrors "github.com/TudorHulban/go-errors"
)

type MeetingRequest struct {
	Mandatory Attendees
	Optional  Attendees

	Duration int64
}

type ParamsNewMeetingRequest struct {
	Mandatory []string
	Optional  []string

	Duration int64
}

func (params *ParamsNewMeetingRequest) IsValid() error {
	if params.Duration < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewMeetingRequest",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	return nil
}

// NewMeetingRequest accepts a duration longer than the day,
// such a request simply finds no slot.
func NewMeetingRequest(params *ParamsNewMeetingRequest) (*MeetingRequest, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &MeetingRequest{
			Mandatory: NewAttendees(params.Mandatory...),
			Optional:  NewAttendees(params.Optional...),
			Duration:  params.Duration,
		},
		nil
}

func (req *MeetingRequest) AddOptionalAttendee(identifier string) {
	if req.Optional == nil {
		req.Optional = make(Attendees)
	}

	req.Optional[identifier] = struct{}{}
}
