package http

import (
	"net/http"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,max=150"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Phone     string `json:"phone" form:"phone"`
	Address   string `json:"address" form:"address"`
	Role      string `json:"role" form:"role" validate:"required,oneof=client merchant service_provider courier"`
	Language  string `json:"language" form:"language" validate:"omitempty,oneof=fr en"`

	VehicleType    string `json:"vehicle_type" form:"vehicle_type"`
	CompanyName    string `json:"company_name" form:"company_name"`
	Siret          string `json:"siret" form:"siret"`
	CompanyAddress string `json:"company_address" form:"company_address"`
	Specialties    string `json:"specialties" form:"specialties"`

	// HourlyRate is a decimal string such as "25.50".
	HourlyRate string `json:"hourly_rate" form:"hourly_rate"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type ProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Language  string `json:"language" validate:"omitempty,oneof=fr en"`
}

func (r RegisterRequest) toCommandInput() (commands.Registration, commands.RoleDetails, error) {
	role, err := user.ParseRole(r.Role)
	if err != nil {
		return commands.Registration{}, commands.RoleDetails{}, err
	}
	lang, err := user.ParseLanguage(r.Language)
	if err != nil {
		return commands.Registration{}, commands.RoleDetails{}, err
	}
	rate, err := optionalMoney(r.HourlyRate)
	if err != nil {
		return commands.Registration{}, commands.RoleDetails{}, err
	}

	return commands.Registration{
			Username:  r.Username,
			Email:     r.Email,
			Password:  r.Password,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
			Address:   r.Address,
			Role:      role,
			Language:  lang,
		}, commands.RoleDetails{
			VehicleType:    r.VehicleType,
			CompanyName:    r.CompanyName,
			Siret:          r.Siret,
			CompanyAddress: r.CompanyAddress,
			Specialties:    r.Specialties,
			HourlyRate:     rate,
		}, nil
}

// RegisterAccount handles POST /api/v1/auth/register.
func (s *Server) RegisterAccount(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	registration, details, err := req.toCommandInput()
	if err != nil {
		return err
	}

	return s.register(c, registration, details)
}

// RegisterCourier handles POST /api/v1/auth/register/courier, a multipart
// form carrying the identity card and driving license files.
func (s *Server) RegisterCourier(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	req.Role = user.Courier.String()

	registration, details, err := req.toCommandInput()
	if err != nil {
		return err
	}

	identityCard, idFile, err := formUpload(c, "identity_card")
	if err != nil {
		return err
	}
	drivingLicense, licenseFile, err := formUpload(c, "driving_license")
	if err != nil {
		closeAll(idFile)
		return err
	}
	defer closeAll(idFile, licenseFile)

	details.IdentityCard = identityCard
	details.DrivingLicense = drivingLicense

	return s.register(c, registration, details)
}

func (s *Server) register(c echo.Context, registration commands.Registration, details commands.RoleDetails) error {
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, registration, details)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Login, req.Password, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return err
	}

	token, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer"})
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless; the client
// drops its copy.
func (s *Server) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile handles PUT /api/v1/auth/profile.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(callerID(c), commands.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Language:  user.Language(req.Language),
	})
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
