package payment

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// Status is the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Succeeded ──> Refunded
//	          ├──> Failed
//	          └──> Refunded
//
// Entering Succeeded runs the invoice and wallet cascade.
type Status int

const (
	Unknown Status = iota
	Pending
	Succeeded
	Failed
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Succeeded: "succeeded",
		Failed:    "failed",
		Refunded:  "refunded",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanMoveTo reports whether s -> next is an allowed transition.
func (s Status) CanMoveTo(next Status) bool {
	switch s {
	case Pending:
		return next == Succeeded || next == Failed || next == Refunded
	case Succeeded:
		return next == Refunded
	default:
		return false
	}
}

// Mode is how the payer pays.
type Mode int

const (
	UnknownMode Mode = iota
	Card
	Transfer
	Wallet
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		UnknownMode: "unknown",
		Card:        "card",
		Transfer:    "transfer",
		Wallet:      "wallet",
	}
}

func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Card, nil
	}
	for mode, str := range getModeStrings() {
		if mode != UnknownMode && str == s {
			return mode, nil
		}
	}
	return UnknownMode, errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a valid payment mode", s))
}

func (m Mode) Validate() error {
	if m < Card || m > Wallet {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}
