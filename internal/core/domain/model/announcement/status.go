package announcement

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// Status is the lifecycle state of an announcement.
//
// State transitions:
//
//	Active ──> InProgress ──> Completed
//	  │            │
//	  └────────────┴────────> Cancelled
//
// InProgress is entered on the first proposal; Completed when the accepted
// delivery is delivered.
type Status int

const (
	Unknown Status = iota
	Active
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Active:     "active",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func (s Status) Validate() error {
	if s < Active || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid announcement status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the announcement still takes proposals and schedule changes.
func (s Status) IsOpen() bool {
	return s == Active || s == InProgress
}

func (s Status) conflict(action string) error {
	return errs.NewStateConflictError("announcement", s.String(), action)
}

// Kind tells what is transported.
type Kind int

const (
	UnknownKind Kind = iota
	Parcel
	PersonService
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "parcel":
		return Parcel, nil
	case "person_service":
		return PersonService, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid announcement kind", s))
	}
}

func (k Kind) Validate() error {
	if k != Parcel && k != PersonService {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid announcement kind", k))
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case Parcel:
		return "parcel"
	case PersonService:
		return "person_service"
	default:
		return "unknown"
	}
}
