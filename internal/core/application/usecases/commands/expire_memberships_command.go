package commands

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrExpireMembershipsCommandIsNotConstructed = errors.New(
	"ExpireMembershipsCommand must be created via NewExpireMembershipsCommand constructor",
)

// ExpireMembershipsCommand is run daily by the scheduler.
type ExpireMembershipsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewExpireMembershipsCommand(now time.Time) (ExpireMembershipsCommand, error) {
	if now.IsZero() {
		return ExpireMembershipsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ExpireMembershipsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireMembershipsCommand) Validate() error {
	return c.guard.Validate(ErrExpireMembershipsCommandIsNotConstructed)
}

func (c ExpireMembershipsCommand) Now() time.Time {
	return c.now
}
