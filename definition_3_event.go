package scheduler

import (
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Attendees is a set of attendee identifiers.
type Attendees map[string]struct{}

func NewAttendees(identifiers ...string) Attendees {
	result := make(Attendees, len(identifiers))

	for _, identifier := range identifiers {
		result[identifier] = struct{}{}
	}

	return result
}

func (a Attendees) Contains(identifier string) bool {
	_, exists := a[identifier]

	return exists
}

// Sorted returns the identifiers in ascending order.
func (a Attendees) Sorted() []string {
	result := make([]string, 0, len(a))

	for identifier := range a {
		result = append(result, identifier)
	}

	slices.Sort(result)

	return result
}

type Event struct {
	Name      string
	When      TimeSpan
	Attendees Attendees
}

type ParamsNewEvent struct {
	Name      string `valid:"required"`
	When      TimeSpan
	Attendees []string
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Scheduler",
				Caller:      "NewEvent",
				Issue:       errValidation,
			}
	}

	if params.When.Duration() <= 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrInvalidInput{
					InputName: "When",
				},
			}
	}

	return &Event{
			Name:      params.Name,
			When:      params.When,
			Attendees: NewAttendees(params.Attendees...),
		},
		nil
}

// IsAttendedByAnyOf reports whether at least one of the people attends the event.
func (ev *Event) IsAttendedByAnyOf(people Attendees) bool {
	if len(people) < len(ev.Attendees) {
		for person := range people {
			if ev.Attendees.Contains(person) {
				return true
			}
		}

		return false
	}

	for attendee := range ev.Attendees {
		if people.Contains(attendee) {
			return true
		}
	}

	return false
}
