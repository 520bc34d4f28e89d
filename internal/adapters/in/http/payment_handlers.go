package http

import (
	"net/http"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Reference     string          `json:"reference"`
	PayerID       string          `json:"payer_id" validate:"required,uuid"`
	BeneficiaryID string          `json:"beneficiary_id" validate:"required,uuid"`
	DeliveryID    string          `json:"delivery_id" validate:"omitempty,uuid"`
	ServiceID     string          `json:"service_id" validate:"omitempty,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Mode          string          `json:"mode" validate:"required,oneof=card transfer wallet"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending succeeded failed refunded"`
	ExternalID    string          `json:"external_id"`
}

type PaymentStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending succeeded failed refunded"`
	ExternalID string `json:"external_id"`
}

type MonthlyRevenueView struct {
	Month    int             `json:"month"`
	Total    decimal.Decimal `json:"total"`
	Payments int             `json:"payments"`
}

func (r PaymentRequest) toDraft() (commands.PaymentDraft, error) {
	payerID, err := kernel.UUIDFromString(r.PayerID)
	if err != nil {
		return commands.PaymentDraft{}, err
	}
	beneficiaryID, err := kernel.UUIDFromString(r.BeneficiaryID)
	if err != nil {
		return commands.PaymentDraft{}, err
	}
	deliveryID, err := optionalUUID("delivery_id", r.DeliveryID)
	if err != nil {
		return commands.PaymentDraft{}, err
	}
	serviceID, err := optionalUUID("service_id", r.ServiceID)
	if err != nil {
		return commands.PaymentDraft{}, err
	}
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return commands.PaymentDraft{}, err
	}
	mode, err := payment.ParseMode(r.Mode)
	if err != nil {
		return commands.PaymentDraft{}, err
	}

	status := payment.Pending
	if r.Status != "" {
		if status, err = payment.ParseStatus(r.Status); err != nil {
			return commands.PaymentDraft{}, err
		}
	}

	return commands.PaymentDraft{
		Reference:     r.Reference,
		PayerID:       payerID,
		BeneficiaryID: beneficiaryID,
		Subject:       payment.Subject{DeliveryID: deliveryID, ServiceID: serviceID},
		Amount:        amount,
		Mode:          mode,
		Status:        status,
		ExternalID:    r.ExternalID,
	}, nil
}

// RecordPayment handles POST /api/v1/payments.
func (s *Server) RecordPayment(c echo.Context) error {
	var req PaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	draft, err := req.toDraft()
	if err != nil {
		return err
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, callerID(c), draft)
	if err != nil {
		return err
	}

	if err = s.handlers.RecordPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: paymentID.String()})
}

// UpdatePaymentStatus handles PATCH /api/v1/admin/payments/:id/status.
func (s *Server) UpdatePaymentStatus(c echo.Context) error {
	paymentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req PaymentStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	status, err := payment.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, callerID(c), status, req.ExternalID)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdatePaymentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// MonthlyRevenue handles GET /api/v1/admin/revenue?year=2026.
func (s *Server) MonthlyRevenue(c echo.Context) error {
	var year int
	if err := queryParam(c, "year", true, &year); err != nil {
		return err
	}

	query, err := queries.NewMonthlyRevenueQuery(year)
	if err != nil {
		return err
	}

	months, err := s.handlers.MonthlyRevenue.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MonthlyRevenueView, len(months))
	for i, m := range months {
		response[i] = MonthlyRevenueView{Month: m.Month, Total: m.Total, Payments: m.Payments}
	}

	return c.JSON(http.StatusOK, response)
}
