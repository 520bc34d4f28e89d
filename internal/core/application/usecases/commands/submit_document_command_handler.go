package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

const documentsFolder = "documents"

type SubmitDocumentCommandHandler struct {
	uowFactory AccountUoWFactory
	storage    ports.DocumentStorage
	logger     *zap.Logger
}

func NewSubmitDocumentCommandHandler(
	uowFactory AccountUoWFactory, storage ports.DocumentStorage, logger *zap.Logger,
) SubmitDocumentCommandHandler {
	return SubmitDocumentCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		logger:     logger,
	}
}

// Handle stores the file, then records the document. A document of the same
// type on the same open request is replaced; its file is removed once the
// transaction has committed.
func (h *SubmitDocumentCommandHandler) Handle(ctx context.Context, cmd SubmitDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ref, err := storeUpload(ctx, h.storage, storageKey(documentsFolder, cmd.OwnerID(), cmd.Upload().FileName), cmd.Upload())
	if err != nil {
		return err
	}

	replacedRefs, err := h.record(ctx, cmd, ref)
	if err != nil {
		discardBlobs(ctx, h.storage, h.logger, ref)
		return err
	}

	discardBlobs(ctx, h.storage, h.logger, replacedRefs...)
	return nil
}

// record returns the file references of every replaced document.
func (h *SubmitDocumentCommandHandler) record(ctx context.Context, cmd SubmitDocumentCommand, ref string) ([]string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	owner, err := uow.UserRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	validationRepo := uow.ValidationRepository()
	var (
		requestID *kernel.UUID
		siblings  []*validation.Document
	)
	if owner.HasRole(user.Courier) {
		request, reqErr := validationRepo.GetLatestRequest(ctx, owner.ID())
		if reqErr != nil {
			return nil, reqErr
		}
		if reqErr = request.AcceptsDocuments(); reqErr != nil {
			return nil, reqErr
		}
		id := request.ID()
		requestID = &id

		if siblings, err = validationRepo.ListDocumentsByRequest(ctx, id); err != nil {
			return nil, err
		}
	} else if siblings, err = validationRepo.ListDocumentsByOwner(ctx, owner.ID()); err != nil {
		return nil, err
	}

	var replacedRefs []string
	for _, d := range siblings {
		if d.Type() != cmd.DocType() {
			continue
		}
		if err = validationRepo.DeleteDocument(ctx, d.ID()); err != nil {
			return nil, err
		}
		replacedRefs = append(replacedRefs, d.FileRef())
	}

	doc, err := validation.NewDocument(cmd.DocumentID(), owner.ID(), requestID, cmd.DocType(), ref, now)
	if err != nil {
		return nil, err
	}
	if err = validationRepo.AddDocument(ctx, doc); err != nil {
		return nil, err
	}

	if owner.HasRole(user.Courier) && cmd.DocType().IsMandatory() {
		if err = attachToCourierProfile(ctx, uow.ProfileRepository(), owner.ID(), cmd.DocType(), ref); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return replacedRefs, nil
}

func attachToCourierProfile(
	ctx context.Context, repo ports.ProfileRepository, courierID kernel.UUID, docType validation.DocumentType, ref string,
) error {
	p, err := repo.GetCourier(ctx, courierID)
	if err != nil {
		return err
	}

	switch docType {
	case validation.IdentityCard:
		p.AttachIdentityDocument(ref)
	case validation.DrivingLicense:
		p.AttachDrivingLicense(ref)
	default:
		return nil
	}
	return repo.UpdateCourier(ctx, p)
}
