package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

type CreateContractCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewCreateContractCommandHandler(uowFactory MembershipUoWFactory) CreateContractCommandHandler {
	return CreateContractCommandHandler{uowFactory: uowFactory}
}

func (h *CreateContractCommandHandler) Handle(ctx context.Context, cmd CreateContractCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "create contracts", user.Admin); err != nil {
		return err
	}
	if _, err := uow.UserRepository().Get(ctx, cmd.OwnerID()); err != nil {
		return err
	}

	c, err := contract.NewContract(cmd.ContractID(), cmd.OwnerID(), cmd.DocumentRef(), cmd.Description(),
		cmd.Period(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.ContractRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type ChangeContractCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewChangeContractCommandHandler(uowFactory MembershipUoWFactory) ChangeContractCommandHandler {
	return ChangeContractCommandHandler{uowFactory: uowFactory}
}

// Handle signs or terminates the contract. Signing by a merchant also flags
// the merchant profile as under contract.
func (h *ChangeContractCommandHandler) Handle(ctx context.Context, cmd ChangeContractCommand) error {
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

	repo := uow.ContractRepository()
	c, err := repo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	var changed bool
	switch cmd.Change() {
	case SignContract:
		if !c.OwnerID().IsEqual(cmd.ActorID()) {
			return errs.NewAuthorizationError(cmd.ActorID().String(), "sign contract "+c.Reference())
		}
		if changed, err = c.Sign(); err != nil {
			return err
		}
		if changed {
			if err = markMerchantUnderContract(ctx, uow, c); err != nil {
				return err
			}
		}
	case TerminateContract:
		if !c.OwnerID().IsEqual(cmd.ActorID()) {
			if _, err = requireRole(ctx, uow, cmd.ActorID(), "terminate contract "+c.Reference(), user.Admin); err != nil {
				return err
			}
		}
		if changed, err = c.Terminate(); err != nil {
			return err
		}
	}
	if !changed {
		return nil
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func markMerchantUnderContract(ctx context.Context, uow MembershipUoW, c *contract.Contract) error {
	profiles := uow.ProfileRepository()
	p, err := profiles.GetMerchant(ctx, c.OwnerID())
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if p.HasSignedContract() {
		return nil
	}
	p.MarkContractSigned()
	return profiles.UpdateMerchant(ctx, p)
}
