package queries

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDocumentsQueryHandler struct {
	db *gorm.DB
}

func NewListDocumentsQueryHandler(db *gorm.DB) ListDocumentsQueryHandler {
	return ListDocumentsQueryHandler{db: db}
}

func (h ListDocumentsQueryHandler) Handle(ctx context.Context, query ListDocumentsQuery) ([]DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			type,
			file_ref,
			uploaded_at,
			validated,
			reviewed_at,
			comment
		FROM justification_documents
		WHERE owner_id = ?
		ORDER BY uploaded_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]DocumentResponse, 0)
	for rows.Next() {
		var resp DocumentResponse
		var id uuid.UUID
		var requestID *uuid.UUID
		var docType int
		var validated bool
		var reviewedAt *time.Time

		if err = rows.Scan(&id, &requestID, &docType, &resp.FileRef, &resp.UploadedAt,
			&validated, &reviewedAt, &resp.Comment); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RequestID, err = kernel.UUIDPtrFromBytes(requestID); err != nil {
			return nil, err
		}

		resp.Type = validation.DocumentType(docType).String()
		resp.ReviewedAt = reviewedAt
		switch {
		case validated:
			resp.Review = "validated"
		case reviewedAt != nil:
			resp.Review = "rejected"
		default:
			resp.Review = "pending"
		}
		docs = append(docs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
