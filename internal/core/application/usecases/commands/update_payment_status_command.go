package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

type UpdatePaymentStatusCommand struct {
	paymentID  kernel.UUID
	actorID    kernel.UUID
	status     payment.Status
	externalID string

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(
	paymentID, actorID kernel.UUID, status payment.Status, externalID string,
) (UpdatePaymentStatusCommand, error) {
	if err := errors.Join(paymentID.Validate(), actorID.Validate(), status.Validate()); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return UpdatePaymentStatusCommand{
		paymentID:  paymentID,
		actorID:    actorID,
		status:     status,
		externalID: strings.TrimSpace(externalID),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c UpdatePaymentStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdatePaymentStatusCommand) Status() payment.Status {
	return c.status
}

func (c UpdatePaymentStatusCommand) ExternalID() string {
	return c.externalID
}
