package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
)

const documentsLink = "/documents"

type ValidateDocumentCommandHandler struct {
	uowFactory AccountUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewValidateDocumentCommandHandler(uowFactory AccountUoWFactory, notifier Notifier, pusher Pusher) ValidateDocumentCommandHandler {
	return ValidateDocumentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle validates the document and notifies its owner. When the owner is a
// courier whose mandatory documents are now all validated, a pending request
// moves under review and every admin is notified. Validating a validated
// document changes nothing.
func (h *ValidateDocumentCommandHandler) Handle(ctx context.Context, cmd ValidateDocumentCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "validate documents", user.Admin); err != nil {
		return err
	}

	validationRepo := uow.ValidationRepository()
	doc, err := validationRepo.GetDocument(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	changed, err := doc.Approve(cmd.AdminID(), cmd.Comment(), time.Now())
	if err != nil || !changed {
		return err
	}
	if err = validationRepo.UpdateDocument(ctx, doc); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, uow, doc.OwnerID(),
		notification.DocumentValidated(doc.Type().String()), documentsLink); err != nil {
		return err
	}

	if err = h.escalateRequest(ctx, uow, doc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}

func (h *ValidateDocumentCommandHandler) escalateRequest(ctx context.Context, uow AccountUoW, doc *validation.Document) error {
	if doc.RequestID() == nil || !doc.Type().IsMandatory() {
		return nil
	}

	validationRepo := uow.ValidationRepository()
	request, err := validationRepo.GetRequest(ctx, *doc.RequestID())
	if err != nil {
		return err
	}

	docs, err := validationRepo.ListDocumentsByRequest(ctx, request.ID())
	if err != nil {
		return err
	}
	if !validation.MandatoryDocumentsValidated(docs) || !request.Escalate() {
		return nil
	}

	if err = validationRepo.UpdateRequest(ctx, request); err != nil {
		return err
	}

	courier, err := uow.UserRepository().Get(ctx, request.CourierID())
	if err != nil {
		return err
	}
	return h.notifier.NotifyRole(ctx, uow, user.Admin,
		notification.RequestReady(courier.FullName()), validationRequestLink(request.ID()))
}

type RejectDocumentCommandHandler struct {
	uowFactory AccountUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewRejectDocumentCommandHandler(uowFactory AccountUoWFactory, notifier Notifier, pusher Pusher) RejectDocumentCommandHandler {
	return RejectDocumentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle rejects the document and notifies its owner. The validation request
// status is left untouched. Rejecting a rejected document changes nothing.
func (h *RejectDocumentCommandHandler) Handle(ctx context.Context, cmd RejectDocumentCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "reject documents", user.Admin); err != nil {
		return err
	}

	validationRepo := uow.ValidationRepository()
	doc, err := validationRepo.GetDocument(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	changed, err := doc.Reject(cmd.AdminID(), cmd.Reason(), time.Now())
	if err != nil || !changed {
		return err
	}
	if err = validationRepo.UpdateDocument(ctx, doc); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, uow, doc.OwnerID(),
		notification.DocumentRejected(doc.Type().String(), cmd.Reason()), documentsLink); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}

func validationRequestLink(id kernel.UUID) string {
	return "/admin/validation-requests/" + id.String()
}
