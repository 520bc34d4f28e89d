package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrValidateDocumentCommandIsNotConstructed = errors.New(
		"ValidateDocumentCommand must be created via NewValidateDocumentCommand constructor",
	)
	ErrRejectDocumentCommandIsNotConstructed = errors.New(
		"RejectDocumentCommand must be created via NewRejectDocumentCommand constructor",
	)
)

// ValidateDocumentCommand marks a justification document as validated.
type ValidateDocumentCommand struct {
	documentID kernel.UUID
	adminID    kernel.UUID
	comment    string

	guard guard.ConstructorGuard
}

func NewValidateDocumentCommand(documentID, adminID kernel.UUID, comment string) (ValidateDocumentCommand, error) {
	if err := errors.Join(documentID.Validate(), adminID.Validate()); err != nil {
		return ValidateDocumentCommand{}, err
	}

	return ValidateDocumentCommand{
		documentID: documentID,
		adminID:    adminID,
		comment:    strings.TrimSpace(comment),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ValidateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrValidateDocumentCommandIsNotConstructed)
}

func (c ValidateDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c ValidateDocumentCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c ValidateDocumentCommand) Comment() string {
	return c.comment
}

// RejectDocumentCommand rejects a justification document with a reason.
type RejectDocumentCommand struct {
	documentID kernel.UUID
	adminID    kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewRejectDocumentCommand(documentID, adminID kernel.UUID, reason string) (RejectDocumentCommand, error) {
	reason = strings.TrimSpace(reason)

	var errList []error
	if reason == "" {
		errList = append(errList, errs.NewValueIsRequiredError("reason"))
	}
	errList = append(errList, documentID.Validate(), adminID.Validate())
	if err := errors.Join(errList...); err != nil {
		return RejectDocumentCommand{}, err
	}

	return RejectDocumentCommand{
		documentID: documentID,
		adminID:    adminID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RejectDocumentCommand) Validate() error {
	return c.guard.Validate(ErrRejectDocumentCommandIsNotConstructed)
}

func (c RejectDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c RejectDocumentCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c RejectDocumentCommand) Reason() string {
	return c.reason
}
