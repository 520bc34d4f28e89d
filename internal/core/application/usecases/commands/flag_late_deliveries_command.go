package commands

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrFlagLateDeliveriesCommandIsNotConstructed = errors.New(
	"FlagLateDeliveriesCommand must be created via NewFlagLateDeliveriesCommand constructor",
)

// FlagLateDeliveriesCommand is run by the scheduler with the scan time.
type FlagLateDeliveriesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewFlagLateDeliveriesCommand(now time.Time) (FlagLateDeliveriesCommand, error) {
	if now.IsZero() {
		return FlagLateDeliveriesCommand{}, errs.NewValueIsRequiredError("now")
	}

	return FlagLateDeliveriesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c FlagLateDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFlagLateDeliveriesCommandIsNotConstructed)
}

func (c FlagLateDeliveriesCommand) Now() time.Time {
	return c.now
}
