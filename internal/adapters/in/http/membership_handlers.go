package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/warehouse"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ContractRequest struct {
	OwnerID     string     `json:"owner_id" validate:"required,uuid"`
	DocumentRef string     `json:"document_ref"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start" validate:"required"`
	End         *time.Time `json:"end"`
}

type SubscriptionRequest struct {
	Plan   string `json:"plan" validate:"required,oneof=free starter premium"`
	Months int    `json:"months" validate:"required,min=1,max=36"`
}

type EvaluationRequest struct {
	EvaluatedID string `json:"evaluated_id" validate:"required,uuid"`
	DeliveryID  string `json:"delivery_id" validate:"omitempty,uuid"`
	ServiceID   string `json:"service_id" validate:"omitempty,uuid"`
	Score       int    `json:"score" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

type ServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Kind        string          `json:"kind" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

type WarehouseRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	PostalCode    string `json:"postal_code"`
	TotalCapacity int    `json:"total_capacity" validate:"min=0"`
	IsOffice      bool   `json:"is_office"`
}

type StorageBoxCreateRequest struct {
	Reference string          `json:"reference" validate:"required"`
	Capacity  decimal.Decimal `json:"capacity"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// CreateContract handles POST /api/v1/admin/contracts.
func (s *Server) CreateContract(c echo.Context) error {
	var req ContractRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return err
	}

	contractID := kernel.NewUUID()
	cmd, err := commands.NewCreateContractCommand(
		contractID, callerID(c), ownerID, req.DocumentRef, req.Description,
		contract.Period{Start: req.Start, End: req.End},
	)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateContract.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: contractID.String()})
}

// SignContract handles POST /api/v1/contracts/:id/sign.
func (s *Server) SignContract(c echo.Context) error {
	return s.changeContract(c, commands.SignContract)
}

// TerminateContract handles POST /api/v1/contracts/:id/terminate.
func (s *Server) TerminateContract(c echo.Context) error {
	return s.changeContract(c, commands.TerminateContract)
}

func (s *Server) changeContract(c echo.Context, change commands.ContractChange) error {
	contractID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeContractCommand(contractID, callerID(c), change)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeContract.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Subscribe handles POST /api/v1/subscriptions.
func (s *Server) Subscribe(c echo.Context) error {
	var req SubscriptionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	plan, err := subscription.ParsePlan(req.Plan)
	if err != nil {
		return err
	}

	subscriptionID := kernel.NewUUID()
	cmd, err := commands.NewSubscribeCommand(subscriptionID, callerID(c), plan, req.Months)
	if err != nil {
		return err
	}

	if err = s.handlers.Subscribe.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: subscriptionID.String()})
}

// SubmitEvaluation handles POST /api/v1/evaluations.
func (s *Server) SubmitEvaluation(c echo.Context) error {
	var req EvaluationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	evaluatedID, err := kernel.UUIDFromString(req.EvaluatedID)
	if err != nil {
		return err
	}
	deliveryID, err := optionalUUID("delivery_id", req.DeliveryID)
	if err != nil {
		return err
	}
	serviceID, err := optionalUUID("service_id", req.ServiceID)
	if err != nil {
		return err
	}

	evaluationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitEvaluationCommand(
		evaluationID, callerID(c), evaluatedID,
		evaluation.Subject{DeliveryID: deliveryID, ServiceID: serviceID},
		req.Score, req.Comment,
	)
	if err != nil {
		return err
	}

	if err = s.handlers.SubmitEvaluation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: evaluationID.String()})
}

// CreateService handles POST /api/v1/services.
func (s *Server) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		return err
	}
	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return err
	}

	serviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceCommand(serviceID, callerID(c), commands.ServiceOffer{
		Name:        req.Name,
		Description: req.Description,
		Kind:        kind,
		Price:       price,
	})
	if err != nil {
		return err
	}

	if err = s.handlers.CreateService.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: serviceID.String()})
}

// CreateWarehouse handles POST /api/v1/admin/warehouses.
func (s *Server) CreateWarehouse(c echo.Context) error {
	var req WarehouseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(warehouseID, callerID(c), warehouse.Site{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	}, req.TotalCapacity, req.IsOffice)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateWarehouse.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: warehouseID.String()})
}

// AddStorageBox handles POST /api/v1/admin/warehouses/:id/boxes.
func (s *Server) AddStorageBox(c echo.Context) error {
	warehouseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StorageBoxCreateRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	rate, err := kernel.NewMoney(req.DailyRate)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddStorageBoxCommand(warehouseID, callerID(c), req.Reference, req.Capacity, rate)
	if err != nil {
		return err
	}

	if err = s.handlers.AddStorageBox.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}
