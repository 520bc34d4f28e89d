package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand completes a delivery. When code is given it must
// match the delivery validation code. paymentID names the pending payment
// created for the courier.
type MarkDeliveredCommand struct {
	deliveryID kernel.UUID
	actorID    kernel.UUID
	paymentID  kernel.UUID
	code       *string

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(deliveryID, actorID, paymentID kernel.UUID, code *string) (MarkDeliveredCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate(), paymentID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}
	if code != nil {
		trimmed := strings.TrimSpace(*code)
		code = &trimmed
	}

	return MarkDeliveredCommand{
		deliveryID: deliveryID,
		actorID:    actorID,
		paymentID:  paymentID,
		code:       code,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c MarkDeliveredCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c MarkDeliveredCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c MarkDeliveredCommand) Code() *string {
	return c.code
}
