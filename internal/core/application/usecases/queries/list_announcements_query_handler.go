package queries

import (
	"context"
	"database/sql"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// announcementColumns is shared by both listings; proposals counts the
// non-cancelled deliveries.
const announcementColumns = `
	SELECT
		a.id,
		a.author_id,
		a.title,
		a.kind,
		a.origin,
		a.destination,
		a.departure,
		a.arrival,
		a.price,
		a.urgent,
		a.weight,
		a.views,
		a.status,
		(SELECT COUNT(*) FROM deliveries d WHERE d.announcement_id = a.id AND d.status <> @cancelled) AS proposals,
		a.created_at
	FROM announcements a
`

type ListMyAnnouncementsQueryHandler struct {
	db *gorm.DB
}

func NewListMyAnnouncementsQueryHandler(db *gorm.DB) ListMyAnnouncementsQueryHandler {
	return ListMyAnnouncementsQueryHandler{db: db}
}

// Handle returns the author's announcements, newest first.
func (h ListMyAnnouncementsQueryHandler) Handle(
	ctx context.Context,
	query ListMyAnnouncementsQuery,
) ([]AnnouncementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(announcementColumns+`
		WHERE a.author_id = @author
		ORDER BY a.created_at DESC
	`, sql.Named("cancelled", int(delivery.Cancelled)), sql.Named("author", query.AuthorID().Bytes())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

type ListAvailableAnnouncementsQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableAnnouncementsQueryHandler(db *gorm.DB) ListAvailableAnnouncementsQueryHandler {
	return ListAvailableAnnouncementsQueryHandler{db: db}
}

// Handle returns urgent announcements first, then by departure.
func (h ListAvailableAnnouncementsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableAnnouncementsQuery,
) ([]AnnouncementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(announcementColumns+`
		WHERE a.status IN @open
		  AND a.author_id <> @courier
		  AND NOT EXISTS (
			SELECT 1 FROM deliveries d
			WHERE d.announcement_id = a.id AND d.status IN @accepted
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM deliveries d
			WHERE d.announcement_id = a.id AND d.courier_id = @courier AND d.status <> @cancelled
		  )
		ORDER BY a.urgent DESC, a.departure
	`,
		sql.Named("cancelled", int(delivery.Cancelled)),
		sql.Named("open", []int{int(announcement.Active), int(announcement.InProgress)}),
		sql.Named("accepted", []int{int(delivery.InProgress), int(delivery.Delivered)}),
		sql.Named("courier", query.CourierID().Bytes()),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

func scanAnnouncements(rows *sql.Rows) ([]AnnouncementResponse, error) {
	announcements := make([]AnnouncementResponse, 0)
	for rows.Next() {
		var resp AnnouncementResponse
		var id, authorID uuid.UUID
		var kind, status int

		err := rows.Scan(
			&id,
			&authorID,
			&resp.Title,
			&kind,
			&resp.Origin,
			&resp.Destination,
			&resp.Departure,
			&resp.Arrival,
			&resp.Price,
			&resp.Urgent,
			&resp.Weight,
			&resp.Views,
			&status,
			&resp.Proposals,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}

		resp.Kind = announcement.Kind(kind).String()
		resp.Status = announcement.Status(status).String()
		announcements = append(announcements, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}
