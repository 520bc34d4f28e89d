package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

const profileLink = "/profile"

type ReviewValidationRequestCommandHandler struct {
	uowFactory AccountUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewReviewValidationRequestCommandHandler(
	uowFactory AccountUoWFactory, notifier Notifier, pusher Pusher,
) ReviewValidationRequestCommandHandler {
	return ReviewValidationRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle applies the decision and notifies the courier when the request
// status actually changed. Approval also marks the courier profile verified.
func (h *ReviewValidationRequestCommandHandler) Handle(ctx context.Context, cmd ReviewValidationRequestCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "review validation requests", user.Admin); err != nil {
		return err
	}

	validationRepo := uow.ValidationRepository()
	request, err := validationRepo.GetRequest(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	changed, tpl, err := h.decide(ctx, uow, request, cmd)
	if err != nil || !changed {
		return err
	}

	if err = validationRepo.UpdateRequest(ctx, request); err != nil {
		return err
	}
	if err = h.notifier.Notify(ctx, uow, request.CourierID(), tpl, profileLink); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}

func (h *ReviewValidationRequestCommandHandler) decide(
	ctx context.Context, uow AccountUoW, request *validation.Request, cmd ReviewValidationRequestCommand,
) (bool, notification.Template, error) {
	now := time.Now()

	switch cmd.Decision() {
	case ApproveRequest:
		docs, err := uow.ValidationRepository().ListDocumentsByRequest(ctx, request.ID())
		if err != nil {
			return false, notification.Template{}, err
		}
		changed, err := request.Approve(cmd.AdminID(), cmd.Notes(), docs, now)
		if err != nil || !changed {
			return false, notification.Template{}, err
		}
		if err = verifyCourier(ctx, uow, request); err != nil {
			return false, notification.Template{}, err
		}
		return true, notification.RequestApproved(), nil

	case RejectRequest:
		changed, err := request.Reject(cmd.AdminID(), cmd.Motif(), cmd.Notes(), now)
		return changed, notification.RequestRejected(cmd.Motif()), err

	case MarkRequestUnderReview:
		changed, err := request.MarkUnderReview(cmd.AdminID(), cmd.Notes(), now)
		return changed, notification.RequestUnderReview(), err

	case ReopenRequest:
		changed, err := request.Reopen(cmd.AdminID(), cmd.Notes(), now)
		return changed, notification.RequestReopened(), err

	default:
		return false, notification.Template{}, errs.NewValueIsInvalidError("decision")
	}
}

// verifyCourier marks the courier profile verified, creating the profile
// when the courier has none yet.
func verifyCourier(ctx context.Context, uow AccountUoW, request *validation.Request) error {
	repo := uow.ProfileRepository()

	p, err := repo.GetCourier(ctx, request.CourierID())
	created := false
	switch {
	case isNotFound(err):
		if p, err = profile.NewCourierProfile(request.CourierID(), ""); err != nil {
			return err
		}
		created = true
	case err != nil:
		return err
	}

	p.MarkVerified()
	if err = p.LinkValidationRequest(request.ID()); err != nil {
		return err
	}

	if created {
		return repo.AddCourier(ctx, p)
	}
	return repo.UpdateCourier(ctx, p)
}
