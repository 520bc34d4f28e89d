package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrSubmitDocumentCommandIsNotConstructed = errors.New(
	"SubmitDocumentCommand must be created via NewSubmitDocumentCommand constructor",
)

// SubmitDocumentCommand uploads a justification document for its owner.
type SubmitDocumentCommand struct {
	documentID kernel.UUID
	ownerID    kernel.UUID
	docType    validation.DocumentType
	upload     Upload

	guard guard.ConstructorGuard
}

func NewSubmitDocumentCommand(
	documentID, ownerID kernel.UUID, docType validation.DocumentType, upload Upload,
) (SubmitDocumentCommand, error) {
	if err := errors.Join(documentID.Validate(), ownerID.Validate(), docType.Validate(), upload.validate()); err != nil {
		return SubmitDocumentCommand{}, err
	}

	return SubmitDocumentCommand{
		documentID: documentID,
		ownerID:    ownerID,
		docType:    docType,
		upload:     upload,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitDocumentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDocumentCommandIsNotConstructed)
}

func (c SubmitDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c SubmitDocumentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c SubmitDocumentCommand) DocType() validation.DocumentType {
	return c.docType
}

func (c SubmitDocumentCommand) Upload() Upload {
	return c.upload
}
