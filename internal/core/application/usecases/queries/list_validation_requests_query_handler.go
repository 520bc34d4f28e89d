package queries

import (
	"context"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListValidationRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListValidationRequestsQueryHandler(db *gorm.DB) ListValidationRequestsQueryHandler {
	return ListValidationRequestsQueryHandler{db: db}
}

// Handle returns the requests oldest first, so the queue is processed in
// arrival order.
func (h ListValidationRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListValidationRequestsQuery,
) ([]ValidationRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.courier_id,
			u.first_name,
			u.last_name,
			u.username,
			u.email,
			r.status,
			COUNT(d.id) AS document_count,
			COUNT(d.id) FILTER (WHERE d.validated) AS validated_count,
			r.rejection_reason,
			r.admin_notes,
			r.created_at,
			r.processed_at
		FROM validation_requests r
		JOIN users u ON u.id = r.courier_id
		LEFT JOIN justification_documents d ON d.request_id = r.id
	`
	args := make([]any, 0, 1)
	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, int(s))
		}
		sql += " WHERE r.status IN ?"
		args = append(args, values)
	}
	sql += `
		GROUP BY r.id, u.id
		ORDER BY r.created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ValidationRequestResponse, 0)
	for rows.Next() {
		var resp ValidationRequestResponse
		var id, courierID uuid.UUID
		var firstName, lastName, username string
		var status int
		var processedAt *time.Time

		err = rows.Scan(
			&id,
			&courierID,
			&firstName,
			&lastName,
			&username,
			&resp.CourierEmail,
			&status,
			&resp.DocumentCount,
			&resp.ValidatedCount,
			&resp.RejectionReason,
			&resp.AdminNotes,
			&resp.CreatedAt,
			&processedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		resp.CourierName = displayName(firstName, lastName, username)
		resp.Status = validation.Status(status).String()
		resp.ProcessedAt = processedAt
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// displayName mirrors user.User.FullName for rows read without the aggregate.
func displayName(firstName, lastName, username string) string {
	if name := strings.TrimSpace(firstName + " " + lastName); name != "" {
		return name
	}
	return username
}
