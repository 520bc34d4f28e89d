package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
)

type CreateServiceCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewCreateServiceCommandHandler(uowFactory MembershipUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{uowFactory: uowFactory}
}

func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := requireRole(ctx, uow, cmd.ProviderID(), "publish services", user.ServiceProvider); err != nil {
		return err
	}

	offer := cmd.Offer()
	s, err := catalog.NewService(cmd.ServiceID(), cmd.ProviderID(), offer.Name, offer.Description,
		offer.Kind, offer.Price, time.Now())
	if err != nil {
		return err
	}
	if err = uow.ServiceRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
