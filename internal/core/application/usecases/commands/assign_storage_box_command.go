package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrAssignStorageBoxCommandIsNotConstructed = errors.New(
	"AssignStorageBoxCommand must be created via NewAssignStorageBoxCommand constructor",
)

type AssignStorageBoxCommand struct {
	deliveryID kernel.UUID
	boxID      kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignStorageBoxCommand(deliveryID, boxID, actorID kernel.UUID) (AssignStorageBoxCommand, error) {
	if err := errors.Join(deliveryID.Validate(), boxID.Validate(), actorID.Validate()); err != nil {
		return AssignStorageBoxCommand{}, err
	}

	return AssignStorageBoxCommand{
		deliveryID: deliveryID,
		boxID:      boxID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignStorageBoxCommand) Validate() error {
	return c.guard.Validate(ErrAssignStorageBoxCommandIsNotConstructed)
}

func (c AssignStorageBoxCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignStorageBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c AssignStorageBoxCommand) ActorID() kernel.UUID {
	return c.actorID
}
