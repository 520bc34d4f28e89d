package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrCreateServiceCommandIsNotConstructed = errors.New(
	"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
)

// ServiceOffer is what a provider publishes.
type ServiceOffer struct {
	Name        string
	Description string
	Kind        catalog.Kind
	Price       kernel.Money
}

type CreateServiceCommand struct {
	serviceID  kernel.UUID
	providerID kernel.UUID
	offer      ServiceOffer

	guard guard.ConstructorGuard
}

func NewCreateServiceCommand(serviceID, providerID kernel.UUID, offer ServiceOffer) (CreateServiceCommand, error) {
	if err := errors.Join(serviceID.Validate(), providerID.Validate()); err != nil {
		return CreateServiceCommand{}, err
	}

	return CreateServiceCommand{
		serviceID:  serviceID,
		providerID: providerID,
		offer:      offer,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c CreateServiceCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c CreateServiceCommand) Offer() ServiceOffer {
	return c.offer
}
