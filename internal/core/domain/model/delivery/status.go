package delivery

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//	   │             │
//	   └─────────────┴──────> Cancelled
//
// A pending delivery is a courier's proposal. Accepting one moves it to
// InProgress and cancels every competing proposal on the announcement.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is a proposal waiting for the client.
	Pending

	// InProgress is the accepted proposal.
	InProgress

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Validate checks that values read from the store or the API are real statuses.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the delivery still counts against the announcement.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}

// IsEngaged reports whether the delivery was accepted by the client.
func (s Status) IsEngaged() bool {
	return s == InProgress || s == Delivered
}

// Accept transitions Pending to InProgress.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, s.conflict("accept")
	}
	return InProgress, nil
}

// Deliver transitions InProgress to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return Unknown, s.conflict("deliver")
	}
	return Delivered, nil
}

// Cancel transitions an active delivery to Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return Unknown, s.conflict("cancel")
	}
	return Cancelled, nil
}

func (s Status) conflict(action string) error {
	return errs.NewStateConflictError("delivery", s.String(), action)
}
