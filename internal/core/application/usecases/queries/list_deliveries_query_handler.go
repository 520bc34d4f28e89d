package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListMyDeliveriesQueryHandler(db *gorm.DB) ListMyDeliveriesQueryHandler {
	return ListMyDeliveriesQueryHandler{db: db}
}

// Handle returns the deliveries newest first.
func (h ListMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListMyDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.reference,
			d.announcement_id,
			a.title,
			d.courier_id,
			d.client_id,
			d.status,
			CASE WHEN d.client_id = @user THEN d.validation_code ELSE '' END,
			d.weight,
			d.scheduled_pickup,
			d.scheduled_delivery,
			d.delivered_at,
			a.price
		FROM deliveries d
		JOIN announcements a ON a.id = d.announcement_id
		WHERE d.courier_id = @user OR d.client_id = @user
		ORDER BY d.created_at DESC
	`, sql.Named("user", query.UserID().Bytes())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		var resp DeliveryResponse
		var id, announcementID, courierID, clientID uuid.UUID
		var status int
		var deliveredAt *time.Time

		err = rows.Scan(
			&id,
			&resp.Reference,
			&announcementID,
			&resp.AnnouncementTitle,
			&courierID,
			&clientID,
			&status,
			&resp.ValidationCode,
			&resp.Weight,
			&resp.ScheduledPickup,
			&resp.ScheduledDelivery,
			&deliveredAt,
			&resp.Price,
		)
		if err != nil {
			return nil, err
		}

		ids := []*kernel.UUID{&resp.ID, &resp.AnnouncementID, &resp.CourierID, &resp.ClientID}
		for i, raw := range []uuid.UUID{id, announcementID, courierID, clientID} {
			if *ids[i], err = kernel.UUIDFromBytes(raw[:]); err != nil {
				return nil, err
			}
		}

		resp.Status = delivery.Status(status).String()
		resp.DeliveredAt = deliveredAt
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
