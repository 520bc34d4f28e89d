package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

// ErrAccountAlreadyExists is returned both by the upfront check and when a
// concurrent registration wins the unique index.
var ErrAccountAlreadyExists = ports.ErrUserAlreadyExists

type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	storage    ports.DocumentStorage
	logger     *zap.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory AccountUoWFactory, hasher ports.PasswordHasher, storage ports.DocumentStorage, logger *zap.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		storage:    storage,
		logger:     logger,
	}
}

// storedUpload is a courier registration file already written to storage.
type storedUpload struct {
	docType validation.DocumentType
	ref     string
}

// Handle creates the user and its role profile in one transaction. Courier
// files are stored beforehand and removed again when the transaction fails,
// so a failed registration leaves neither a user nor a blob behind.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Registration().Password)
	if err != nil {
		return err
	}

	uploads, err := h.storeCourierFiles(ctx, cmd)
	if err != nil {
		return err
	}

	if err = h.register(ctx, cmd, hash, uploads); err != nil {
		refs := make([]string, 0, len(uploads))
		for _, u := range uploads {
			refs = append(refs, u.ref)
		}
		discardBlobs(ctx, h.storage, h.logger, refs...)
		return err
	}
	return nil
}

func (h *RegisterUserCommandHandler) storeCourierFiles(ctx context.Context, cmd RegisterUserCommand) ([]storedUpload, error) {
	if cmd.Registration().Role != user.Courier {
		return nil, nil
	}

	files := []struct {
		docType validation.DocumentType
		upload  *Upload
	}{
		{validation.IdentityCard, cmd.Details().IdentityCard},
		{validation.DrivingLicense, cmd.Details().DrivingLicense},
	}

	var stored []storedUpload
	for _, f := range files {
		if f.upload == nil {
			continue
		}
		ref, err := storeUpload(ctx, h.storage, storageKey(documentsFolder, cmd.UserID(), f.upload.FileName), *f.upload)
		if err != nil {
			for _, s := range stored {
				discardBlobs(ctx, h.storage, h.logger, s.ref)
			}
			return nil, err
		}
		stored = append(stored, storedUpload{docType: f.docType, ref: ref})
	}
	return stored, nil
}

func (h *RegisterUserCommandHandler) register(
	ctx context.Context, cmd RegisterUserCommand, hash string, uploads []storedUpload,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r := cmd.Registration()
	userRepo := uow.UserRepository()

	taken, err := userRepo.Exists(ctx, r.Username, r.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrAccountAlreadyExists
	}

	now := time.Now()
	u, err := user.NewUser(cmd.UserID(), r.Username, r.Email, hash, r.Role, now)
	if err != nil {
		return err
	}
	u.UpdateContact(r.FirstName, r.LastName, r.Phone, r.Address)
	if err = u.SetLanguage(r.Language); err != nil {
		return err
	}
	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	if err = h.createProfile(ctx, uow, u, cmd.Details(), uploads, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *RegisterUserCommandHandler) createProfile(
	ctx context.Context, uow AccountUoW, u *user.User, details RoleDetails, uploads []storedUpload, now time.Time,
) error {
	profileRepo := uow.ProfileRepository()

	switch u.Role() {
	case user.Merchant:
		p, err := profile.NewMerchantProfile(u.ID(), details.CompanyName, details.Siret, details.CompanyAddress)
		if err != nil {
			return err
		}
		return profileRepo.AddMerchant(ctx, p)

	case user.ServiceProvider:
		p, err := profile.NewProviderProfile(u.ID(), details.Specialties, details.HourlyRate)
		if err != nil {
			return err
		}
		return profileRepo.AddProvider(ctx, p)

	case user.Courier:
		return registerCourier(ctx, uow, u, details.VehicleType, uploads, now)

	default:
		return nil
	}
}

// registerCourier opens the courier's first validation request and attaches
// the files uploaded at sign-up to it.
func registerCourier(
	ctx context.Context, uow AccountUoW, u *user.User, vehicleType string, uploads []storedUpload, now time.Time,
) error {
	request, err := validation.NewRequest(kernel.NewUUID(), u.ID(), now)
	if err != nil {
		return err
	}
	validationRepo := uow.ValidationRepository()
	if err = validationRepo.AddRequest(ctx, request); err != nil {
		return err
	}

	p, err := profile.NewCourierProfile(u.ID(), vehicleType)
	if err != nil {
		return err
	}
	if err = p.LinkValidationRequest(request.ID()); err != nil {
		return err
	}

	requestID := request.ID()
	for _, up := range uploads {
		doc, docErr := validation.NewDocument(kernel.NewUUID(), u.ID(), &requestID, up.docType, up.ref, now)
		if docErr != nil {
			return docErr
		}
		if docErr = validationRepo.AddDocument(ctx, doc); docErr != nil {
			return docErr
		}

		switch up.docType {
		case validation.IdentityCard:
			p.AttachIdentityDocument(up.ref)
		case validation.DrivingLicense:
			p.AttachDrivingLicense(up.ref)
		}
	}

	return uow.ProfileRepository().AddCourier(ctx, p)
}
