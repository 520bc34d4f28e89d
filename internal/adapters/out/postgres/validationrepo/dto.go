// Package validationrepo persists courier validation requests and the
// justification documents attached to them.
package validationrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"

	"github.com/google/uuid"
)

type RequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID       uuid.UUID  `gorm:"type:uuid;index"`
	Status          int        `gorm:"index"`
	ProcessedBy     *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	RejectionReason string
	AdminNotes      string
	CreatedAt       time.Time
}

func (RequestDTO) TableName() string {
	return "validation_requests"
}

type DocumentDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;index"`
	RequestID  *uuid.UUID `gorm:"type:uuid;index"`
	Type       int
	FileRef    string `gorm:"size:255"`
	UploadedAt time.Time
	Validated  bool
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	Comment    string
}

func (DocumentDTO) TableName() string {
	return "justification_documents"
}

func requestFromDomain(r *validation.Request) RequestDTO {
	return RequestDTO{
		ID:              r.ID().Bytes(),
		CourierID:       r.CourierID().Bytes(),
		Status:          int(r.Status()),
		ProcessedBy:     kernel.BytesPtr(r.ProcessedBy()),
		ProcessedAt:     r.ProcessedAt(),
		RejectionReason: r.RejectionReason(),
		AdminNotes:      r.AdminNotes(),
		CreatedAt:       r.CreatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*validation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	processedBy, err := kernel.UUIDPtrFromBytes(dto.ProcessedBy)
	if err != nil {
		return nil, err
	}

	return validation.RestoreRequest(validation.RequestParams{
		ID:              id,
		CourierID:       courierID,
		Status:          validation.Status(dto.Status),
		ProcessedBy:     processedBy,
		ProcessedAt:     dto.ProcessedAt,
		RejectionReason: dto.RejectionReason,
		AdminNotes:      dto.AdminNotes,
		CreatedAt:       dto.CreatedAt,
	})
}

func documentFromDomain(d *validation.Document) DocumentDTO {
	return DocumentDTO{
		ID:         d.ID().Bytes(),
		OwnerID:    d.OwnerID().Bytes(),
		RequestID:  kernel.BytesPtr(d.RequestID()),
		Type:       int(d.Type()),
		FileRef:    d.FileRef(),
		UploadedAt: d.UploadedAt(),
		Validated:  d.IsValidated(),
		ReviewedBy: kernel.BytesPtr(d.ReviewedBy()),
		ReviewedAt: d.ReviewedAt(),
		Comment:    d.Comment(),
	}
}

func documentToDomain(dto DocumentDTO) (*validation.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDPtrFromBytes(dto.RequestID)
	if err != nil {
		return nil, err
	}

	reviewedBy, err := kernel.UUIDPtrFromBytes(dto.ReviewedBy)
	if err != nil {
		return nil, err
	}

	return validation.RestoreDocument(validation.DocumentParams{
		ID:         id,
		OwnerID:    ownerID,
		RequestID:  requestID,
		Type:       validation.DocumentType(dto.Type),
		FileRef:    dto.FileRef,
		UploadedAt: dto.UploadedAt,
		Validated:  dto.Validated,
		ReviewedBy: reviewedBy,
		ReviewedAt: dto.ReviewedAt,
		Comment:    dto.Comment,
	})
}
