package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrListValidationRequestsQueryIsNotConstructed = errors.New(
	"ListValidationRequestsQuery must be created via NewListValidationRequestsQuery constructor",
)

// ListValidationRequestsQuery is the admin work queue of courier validation
// requests. Without statuses every request is listed.
//
// Example:
//
//	query, _ := NewListValidationRequestsQuery(validation.Pending, validation.UnderReview)
//	requests, err := handler.Handle(ctx, query)
type ListValidationRequestsQuery struct {
	statuses []validation.Status

	guard guard.ConstructorGuard
}

func NewListValidationRequestsQuery(statuses ...validation.Status) (ListValidationRequestsQuery, error) {
	errList := make([]error, 0, len(statuses))
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListValidationRequestsQuery{}, err
	}

	return ListValidationRequestsQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListValidationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListValidationRequestsQueryIsNotConstructed)
}

func (q ListValidationRequestsQuery) Statuses() []validation.Status {
	return q.statuses
}

// ValidationRequestResponse summarizes a request with its document progress.
type ValidationRequestResponse struct {
	ID              kernel.UUID
	CourierID       kernel.UUID
	CourierName     string
	CourierEmail    string
	Status          string
	DocumentCount   int
	ValidatedCount  int
	RejectionReason string
	AdminNotes      string
	CreatedAt       time.Time
	ProcessedAt     *time.Time
}
