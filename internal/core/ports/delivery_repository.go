package ports

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/warehouse"
)

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	Add(ctx context.Context, aggregate *announcement.Announcement) error
	Update(ctx context.Context, aggregate *announcement.Announcement) error
	Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error)

	// GetForUpdate loads the announcement and locks its row until the
	// transaction ends. Proposals and acceptances on one announcement are
	// serialized by this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error)

	ListByAuthor(ctx context.Context, authorID kernel.UUID) ([]*announcement.Announcement, error)
}

// DeliveryRepository persists deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	ListByAnnouncement(ctx context.Context, announcementID kernel.UUID) ([]*delivery.Delivery, error)

	// CountNonCancelledByCourier feeds the courier delivery counter.
	CountNonCancelledByCourier(ctx context.Context, courierID kernel.UUID) (int, error)

	// ListActive returns pending and in-progress deliveries.
	ListActive(ctx context.Context) ([]*delivery.Delivery, error)
}

// WarehouseRepository persists warehouses with their storage boxes.
type WarehouseRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetByBox returns the warehouse owning the box.
	GetByBox(ctx context.Context, boxID kernel.UUID) (*warehouse.Warehouse, error)
}
