// Package notifications records user notifications inside the caller's
// transaction and pushes them once the transaction has committed.
package notifications

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
)

// Repos is the part of a unit of work the dispatcher writes through.
type Repos interface {
	UserRepository() ports.UserRepository
	NotificationRepository() ports.NotificationRepository
}

// Dispatcher creates localized notifications.
type Dispatcher struct {
	localizer ports.Localizer
	now       func() time.Time
}

func NewDispatcher(localizer ports.Localizer) *Dispatcher {
	return &Dispatcher{
		localizer: localizer,
		now:       time.Now,
	}
}

// Notify records a notification for recipientID in the recipient's language.
func (d *Dispatcher) Notify(
	ctx context.Context, repos Repos, recipientID kernel.UUID, tpl notification.Template, link string,
) error {
	recipient, err := repos.UserRepository().Get(ctx, recipientID)
	if err != nil {
		return err
	}
	return d.record(ctx, repos, recipient, tpl, link)
}

// NotifyRole records one notification per active user of the role.
func (d *Dispatcher) NotifyRole(
	ctx context.Context, repos Repos, role user.Role, tpl notification.Template, link string,
) error {
	recipients, err := repos.UserRepository().ListByRole(ctx, role)
	if err != nil {
		return err
	}

	for _, recipient := range recipients {
		if err = d.record(ctx, repos, recipient, tpl, link); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) record(
	ctx context.Context, repos Repos, recipient *user.User, tpl notification.Template, link string,
) error {
	lang := recipient.Language()
	n, err := notification.NewNotification(
		kernel.NewUUID(),
		recipient.ID(),
		d.localizer.Localize(lang, tpl.Title),
		d.localizer.Localize(lang, tpl.Body, tpl.Args...),
		tpl.Kind,
		link,
		d.now(),
	)
	if err != nil {
		return err
	}

	return repos.NotificationRepository().Add(ctx, n)
}
