package validation

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// Status is the state of a courier's ValidationRequest.
//
// State transitions:
//
//	Pending ──┬──> UnderReview ──┬──> Approved
//	          │                  │
//	          ├──────────────────┴──> Rejected
//	          └─────────────────────> Approved
//
//	Rejected ──(explicit admin reopen)──> UnderReview
//
// Approved is final. Rejected only leaves through an explicit reopen.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status, created together with the courier profile.
	Pending

	// UnderReview means an admin is examining the request, either because
	// both mandatory documents were validated or by explicit admin action.
	UnderReview

	// Approved grants the courier the verified flag.
	Approved

	// Rejected refuses the request. Verification granted earlier is kept.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Pending:     "pending",
		UnderReview: "under_review",
		Approved:    "approved",
		Rejected:    "rejected",
	}
}

func (s Status) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid validation status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseStatus converts the wire name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid validation status", s))
}

// IsTerminal reports whether the status ends the workflow.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// IsOpen reports whether an admin decision is still expected.
func (s Status) IsOpen() bool {
	return s == Pending || s == UnderReview
}

func (s Status) conflict(action string) error {
	return errs.NewStateConflictError("validation request", s.String(), action)
}
