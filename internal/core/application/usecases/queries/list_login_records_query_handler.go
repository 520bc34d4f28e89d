package queries

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListLoginRecordsQueryHandler struct {
	db *gorm.DB
}

func NewListLoginRecordsQueryHandler(db *gorm.DB) ListLoginRecordsQueryHandler {
	return ListLoginRecordsQueryHandler{db: db}
}

func (h ListLoginRecordsQueryHandler) Handle(
	ctx context.Context,
	query ListLoginRecordsQuery,
) ([]LoginRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT r.id, r.user_id, u.username, r.ip_address, r.user_agent, r.logged_at
		FROM login_records r
		JOIN users u ON u.id = r.user_id`
	var args []any
	if userID := query.UserID(); userID != nil {
		stmt += " WHERE r.user_id = ?"
		args = append(args, userID.Bytes())
	}
	stmt += " ORDER BY r.logged_at DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]LoginRecordResponse, 0)
	for rows.Next() {
		var resp LoginRecordResponse
		var id, userID uuid.UUID

		if err = rows.Scan(&id, &userID, &resp.Username, &resp.IP, &resp.UserAgent, &resp.LoggedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
