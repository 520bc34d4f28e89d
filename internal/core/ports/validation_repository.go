package ports

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
)

// ValidationRepository persists validation requests and justification documents.
type ValidationRepository interface {
	AddRequest(ctx context.Context, r *validation.Request) error
	UpdateRequest(ctx context.Context, r *validation.Request) error
	GetRequest(ctx context.Context, id kernel.UUID) (*validation.Request, error)

	// GetLatestRequest returns the most recent request of the courier.
	GetLatestRequest(ctx context.Context, courierID kernel.UUID) (*validation.Request, error)

	// ListRequests returns requests in the given statuses, oldest first.
	// No status means every request.
	ListRequests(ctx context.Context, statuses ...validation.Status) ([]*validation.Request, error)

	AddDocument(ctx context.Context, d *validation.Document) error
	UpdateDocument(ctx context.Context, d *validation.Document) error
	DeleteDocument(ctx context.Context, id kernel.UUID) error
	GetDocument(ctx context.Context, id kernel.UUID) (*validation.Document, error)
	ListDocumentsByOwner(ctx context.Context, ownerID kernel.UUID) ([]*validation.Document, error)
	ListDocumentsByRequest(ctx context.Context, requestID kernel.UUID) ([]*validation.Document, error)
}
