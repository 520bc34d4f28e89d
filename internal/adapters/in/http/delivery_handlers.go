package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProposalRequest struct {
	Description string          `json:"description" validate:"required"`
	Weight      decimal.Decimal `json:"weight"`
	Dimensions  string          `json:"dimensions"`
}

type DeliverRequest struct {
	Code string `json:"code" validate:"omitempty,len=6,numeric"`
}

type StorageBoxRequest struct {
	BoxID string `json:"box_id" validate:"required,uuid"`
}

type DeliveryView struct {
	ID                string          `json:"id"`
	Reference         string          `json:"reference"`
	AnnouncementID    string          `json:"announcement_id"`
	AnnouncementTitle string          `json:"announcement_title"`
	CourierID         string          `json:"courier_id"`
	ClientID          string          `json:"client_id"`
	Status            string          `json:"status"`
	ValidationCode    string          `json:"validation_code,omitempty"`
	Weight            decimal.Decimal `json:"weight"`
	ScheduledPickup   time.Time       `json:"scheduled_pickup"`
	ScheduledDelivery time.Time       `json:"scheduled_delivery"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	Price             decimal.Decimal `json:"price"`
}

// ProposeDelivery handles POST /api/v1/announcements/:id/deliveries.
func (s *Server) ProposeDelivery(c echo.Context) error {
	announcementID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ProposalRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewProposeDeliveryCommand(deliveryID, callerID(c), announcementID, delivery.Parcel{
		Description: req.Description,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		return err
	}

	if err = s.handlers.ProposeDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept.
func (s *Server) AcceptDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, callerID(c))
	if err != nil {
		return err
	}

	if err = s.handlers.AcceptDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/deliveries/:id/deliver.
func (s *Server) MarkDelivered(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req DeliverRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	var code *string
	if req.Code != "" {
		code = &req.Code
	}

	cmd, err := commands.NewMarkDeliveredCommand(deliveryID, callerID(c), kernel.NewUUID(), code)
	if err != nil {
		return err
	}

	if err = s.handlers.MarkDelivered.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignStorageBox handles POST /api/v1/deliveries/:id/storage-box.
func (s *Server) AssignStorageBox(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StorageBoxRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	boxID, err := kernel.UUIDFromString(req.BoxID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignStorageBoxCommand(deliveryID, boxID, callerID(c))
	if err != nil {
		return err
	}

	if err = s.handlers.AssignStorageBox.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMyDeliveries handles GET /api/v1/deliveries/mine.
func (s *Server) ListMyDeliveries(c echo.Context) error {
	query, err := queries.NewListMyDeliveriesQuery(callerID(c))
	if err != nil {
		return err
	}

	list, err := s.handlers.ListMyDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]DeliveryView, len(list))
	for i, d := range list {
		response[i] = DeliveryView{
			ID:                d.ID.String(),
			Reference:         d.Reference,
			AnnouncementID:    d.AnnouncementID.String(),
			AnnouncementTitle: d.AnnouncementTitle,
			CourierID:         d.CourierID.String(),
			ClientID:          d.ClientID.String(),
			Status:            d.Status,
			ValidationCode:    d.ValidationCode,
			Weight:            d.Weight,
			ScheduledPickup:   d.ScheduledPickup,
			ScheduledDelivery: d.ScheduledDelivery,
			DeliveredAt:       d.DeliveredAt,
			Price:             d.Price,
		}
	}

	return c.JSON(http.StatusOK, response)
}
