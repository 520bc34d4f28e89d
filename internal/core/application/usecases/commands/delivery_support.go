package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

func deliveryLink(id kernel.UUID) string {
	return "/deliveries/" + id.String()
}

// trackingLink is used only by late-delivery notices, which are deduplicated on it.
func trackingLink(id kernel.UUID) string {
	return deliveryLink(id) + "/tracking"
}

// requireAuthorOrAdmin lets the author of a or any admin through.
func requireAuthorOrAdmin(
	ctx context.Context, repos UserRepoFactory, actorID kernel.UUID, a *announcement.Announcement, action string,
) error {
	if a.IsAuthoredBy(actorID) {
		return nil
	}
	actor, err := repos.UserRepository().Get(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.IsActive() && actor.HasRole(user.Admin) {
		return nil
	}
	return errs.NewAuthorizationError(actorID.String(), action)
}

// refreshDeliveryCount recomputes the courier's non-cancelled delivery counter.
func refreshDeliveryCount(ctx context.Context, uow DeliveryUoW, courierID kernel.UUID) error {
	count, err := uow.DeliveryRepository().CountNonCancelledByCourier(ctx, courierID)
	if err != nil {
		return err
	}

	profiles := uow.ProfileRepository()
	p, err := profiles.GetCourier(ctx, courierID)
	if err != nil {
		return err
	}
	if p.DeliveryCount() == count {
		return nil
	}
	if err = p.UpdateDeliveryCount(count); err != nil {
		return err
	}
	return profiles.UpdateCourier(ctx, p)
}
