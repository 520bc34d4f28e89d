package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

// RequestDecision is the admin action applied to a courier validation request.
type RequestDecision int

const (
	UnknownDecision RequestDecision = iota
	ApproveRequest
	RejectRequest
	MarkRequestUnderReview
	ReopenRequest
)

func getRequestDecisionStrings() map[RequestDecision]string {
	return map[RequestDecision]string{
		ApproveRequest:         "approve",
		RejectRequest:          "reject",
		MarkRequestUnderReview: "under_review",
		ReopenRequest:          "reopen",
	}
}

func ParseRequestDecision(s string) (RequestDecision, error) {
	for d, str := range getRequestDecisionStrings() {
		if str == s {
			return d, nil
		}
	}
	return UnknownDecision, errs.NewValueIsInvalidError("decision")
}

func (d RequestDecision) String() string {
	if s, ok := getRequestDecisionStrings()[d]; ok {
		return s
	}
	return "unknown"
}

var ErrReviewValidationRequestCommandIsNotConstructed = errors.New(
	"ReviewValidationRequestCommand must be created via NewReviewValidationRequestCommand constructor",
)

// ReviewValidationRequestCommand carries an admin decision on a courier
// validation request. Motif is required for rejections only.
type ReviewValidationRequestCommand struct {
	requestID kernel.UUID
	adminID   kernel.UUID
	decision  RequestDecision
	motif     string
	notes     string

	guard guard.ConstructorGuard
}

func NewReviewValidationRequestCommand(
	requestID, adminID kernel.UUID, decision RequestDecision, motif, notes string,
) (ReviewValidationRequestCommand, error) {
	motif = strings.TrimSpace(motif)

	var errList []error
	errList = append(errList, requestID.Validate(), adminID.Validate())
	if _, ok := getRequestDecisionStrings()[decision]; !ok {
		errList = append(errList, errs.NewValueIsInvalidError("decision"))
	}
	if decision == RejectRequest && motif == "" {
		errList = append(errList, errs.NewValueIsRequiredError("motif"))
	}
	if err := errors.Join(errList...); err != nil {
		return ReviewValidationRequestCommand{}, err
	}

	return ReviewValidationRequestCommand{
		requestID: requestID,
		adminID:   adminID,
		decision:  decision,
		motif:     motif,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewValidationRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewValidationRequestCommandIsNotConstructed)
}

func (c ReviewValidationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c ReviewValidationRequestCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c ReviewValidationRequestCommand) Decision() RequestDecision {
	return c.decision
}

func (c ReviewValidationRequestCommand) Motif() string {
	return c.motif
}

func (c ReviewValidationRequestCommand) Notes() string {
	return c.notes
}
