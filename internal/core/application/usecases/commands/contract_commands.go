package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrCreateContractCommandIsNotConstructed = errors.New(
		"CreateContractCommand must be created via NewCreateContractCommand constructor",
	)
	ErrChangeContractCommandIsNotConstructed = errors.New(
		"ChangeContractCommand must be created via NewChangeContractCommand constructor",
	)
)

// CreateContractCommand drafts a contract for ownerID. Only admins create
// contracts.
type CreateContractCommand struct {
	contractID  kernel.UUID
	adminID     kernel.UUID
	ownerID     kernel.UUID
	documentRef string
	description string
	period      contract.Period

	guard guard.ConstructorGuard
}

func NewCreateContractCommand(
	contractID, adminID, ownerID kernel.UUID, documentRef, description string, period contract.Period,
) (CreateContractCommand, error) {
	if err := errors.Join(contractID.Validate(), adminID.Validate(), ownerID.Validate()); err != nil {
		return CreateContractCommand{}, err
	}

	return CreateContractCommand{
		contractID:  contractID,
		adminID:     adminID,
		ownerID:     ownerID,
		documentRef: strings.TrimSpace(documentRef),
		description: strings.TrimSpace(description),
		period:      period,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateContractCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
}

func (c CreateContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

func (c CreateContractCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c CreateContractCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateContractCommand) DocumentRef() string {
	return c.documentRef
}

func (c CreateContractCommand) Description() string {
	return c.description
}

func (c CreateContractCommand) Period() contract.Period {
	return c.period
}

// ContractChange is what happens to an existing contract.
type ContractChange int

const (
	UnknownContractChange ContractChange = iota
	SignContract
	TerminateContract
)

// ChangeContractCommand signs or terminates a contract. The owner signs;
// the owner or an admin terminates.
type ChangeContractCommand struct {
	contractID kernel.UUID
	actorID    kernel.UUID
	change     ContractChange

	guard guard.ConstructorGuard
}

func NewChangeContractCommand(contractID, actorID kernel.UUID, change ContractChange) (ChangeContractCommand, error) {
	var errList []error
	errList = append(errList, contractID.Validate(), actorID.Validate())
	if change != SignContract && change != TerminateContract {
		errList = append(errList, errs.NewValueIsInvalidError("change"))
	}
	if err := errors.Join(errList...); err != nil {
		return ChangeContractCommand{}, err
	}

	return ChangeContractCommand{
		contractID: contractID,
		actorID:    actorID,
		change:     change,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeContractCommand) Validate() error {
	return c.guard.Validate(ErrChangeContractCommandIsNotConstructed)
}

func (c ChangeContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

func (c ChangeContractCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ChangeContractCommand) Change() ContractChange {
	return c.change
}
