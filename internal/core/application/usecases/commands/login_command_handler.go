package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the login or the password was wrong.
var ErrInvalidCredentials = errs.NewAuthorizationError("anonymous", "log in with these credentials")

type LoginCommandHandler struct {
	uowFactory LoginUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory LoginUoWFactory, hasher ports.PasswordHasher, tokens ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle checks the credentials, stamps the last login, appends a login
// record and returns a bearer token. Inactive accounts cannot log in.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.FindByLogin(ctx, cmd.Login())
	if isNotFound(err) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !u.IsActive() || h.hasher.Compare(u.PasswordHash(), cmd.Password()) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(u.ID(), u.Role())
	if err != nil {
		return "", err
	}

	now := time.Now()
	u.StampLogin(now)
	if err = userRepo.Update(ctx, u); err != nil {
		return "", err
	}

	record, err := audit.NewLoginRecord(kernel.NewUUID(), u.ID(), cmd.IP(), cmd.UserAgent(), now)
	if err != nil {
		return "", err
	}
	if err = uow.LoginRecordRepository().Add(ctx, record); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return token, nil
}
