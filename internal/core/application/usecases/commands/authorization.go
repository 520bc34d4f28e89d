package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// requireRole loads the actor and checks it holds one of roles.
func requireRole(ctx context.Context, repos UserRepoFactory, actorID kernel.UUID, action string, roles ...user.Role) (*user.User, error) {
	actor, err := repos.UserRepository().Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActive() {
		return nil, errs.NewAuthorizationError(actorID.String(), action)
	}
	for _, role := range roles {
		if actor.HasRole(role) {
			return actor, nil
		}
	}
	return nil, errs.NewAuthorizationError(actorID.String(), action)
}
