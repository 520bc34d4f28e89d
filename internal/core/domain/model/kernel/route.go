package kernel

import (
	"errors"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrRouteIsNotConstructed    = errs.NewValueIsRequiredError("route must be created via NewRoute")
	ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError("schedule must be created via NewSchedule")
)

// Route is the origin and destination address of an announcement.
type Route struct {
	origin      string
	destination string
	guard       guard.ConstructorGuard
}

func NewRoute(origin, destination string) (Route, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	var errList []error
	if origin == "" {
		errList = append(errList, errs.NewValueIsRequiredError("origin"))
	}
	if destination == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destination"))
	}
	if err := errors.Join(errList...); err != nil {
		return Route{}, err
	}

	return Route{
		origin:      origin,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) Origin() string {
	return r.origin
}

func (r Route) Destination() string {
	return r.destination
}

// Schedule is a departure/arrival pair. Arrival never precedes departure.
// The announcement owns the schedule and its deliveries mirror it.
type Schedule struct {
	departure time.Time
	arrival   time.Time
	guard     guard.ConstructorGuard
}

func NewSchedule(departure, arrival time.Time) (Schedule, error) {
	if departure.IsZero() {
		return Schedule{}, errs.NewValueIsRequiredError("departure")
	}
	if arrival.IsZero() {
		return Schedule{}, errs.NewValueIsRequiredError("arrival")
	}
	if arrival.Before(departure) {
		return Schedule{}, errs.NewValueIsOutOfRangeError(
			"arrival", arrival.Format(time.RFC3339), departure.Format(time.RFC3339), "unbounded")
	}

	return Schedule{
		departure: departure.UTC(),
		arrival:   arrival.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

func (s Schedule) Departure() time.Time {
	return s.departure
}

func (s Schedule) Arrival() time.Time {
	return s.arrival
}

func (s Schedule) Equal(other Schedule) bool {
	return s.departure.Equal(other.departure) && s.arrival.Equal(other.arrival)
}
