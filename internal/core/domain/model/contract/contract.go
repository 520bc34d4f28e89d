package contract

import (
	"errors"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")

// Status of a contract.
//
//	PendingSignature ──> Active ──> Expired
//	        │              │
//	        └──────────────┴──────> Terminated
type Status int

const (
	Unknown Status = iota
	PendingSignature
	Active
	Expired
	Terminated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		PendingSignature: "pending_signature",
		Active:           "active",
		Expired:          "expired",
		Terminated:       "terminated",
	}
}

func (s Status) Validate() error {
	if s < PendingSignature || s > Terminated {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid contract status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Period is the validity window of a contract. An open-ended contract has
// no end.
type Period struct {
	Start time.Time
	End   *time.Time
}

func (p Period) validate() error {
	if p.Start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if p.End != nil && p.End.Before(p.Start) {
		return errs.NewValueIsOutOfRangeError("end", p.End.Format(time.DateOnly), p.Start.Format(time.DateOnly), "unbounded")
	}
	return nil
}

// Contract binds a user, usually a merchant, to the platform.
type Contract struct {
	id          kernel.UUID
	reference   string
	ownerID     kernel.UUID
	documentRef string
	description string
	period      Period
	status      Status

	guard guard.ConstructorGuard
}

// NewContract drafts a contract awaiting signature with a generated reference.
func NewContract(id, ownerID kernel.UUID, documentRef, description string, period Period, now time.Time) (*Contract, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), period.validate()); err != nil {
		return nil, err
	}

	return &Contract{
		id:          id,
		reference:   kernel.NewContractReference(now),
		ownerID:     ownerID,
		documentRef: documentRef,
		description: description,
		period:      period,
		status:      PendingSignature,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreContract(
	id kernel.UUID, reference string, ownerID kernel.UUID, documentRef, description string, period Period, status Status,
) (*Contract, error) {
	var errList []error
	if reference == "" {
		errList = append(errList, errs.NewValueIsRequiredError("reference"))
	}
	errList = append(errList, id.Validate(), ownerID.Validate(), period.validate(), status.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Contract{
		id:          id,
		reference:   reference,
		ownerID:     ownerID,
		documentRef: documentRef,
		description: description,
		period:      period,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c *Contract) Validate() error {
	if c == nil {
		return ErrContractIsNotConstructed
	}
	return c.guard.Validate(ErrContractIsNotConstructed)
}

func (c *Contract) ID() kernel.UUID {
	return c.id
}

func (c *Contract) Reference() string {
	return c.reference
}

func (c *Contract) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *Contract) DocumentRef() string {
	return c.documentRef
}

func (c *Contract) Description() string {
	return c.description
}

func (c *Contract) Period() Period {
	return c.period
}

func (c *Contract) Status() Status {
	return c.status
}

// Sign activates a pending contract. Signing an active contract is a no-op.
func (c *Contract) Sign() (bool, error) {
	switch c.status {
	case Active:
		return false, nil
	case PendingSignature:
		c.status = Active
		return true, nil
	default:
		return false, errs.NewStateConflictError("contract", c.status.String(), "sign")
	}
}

// Terminate ends a pending or active contract early.
func (c *Contract) Terminate() (bool, error) {
	switch c.status {
	case Terminated:
		return false, nil
	case PendingSignature, Active:
		c.status = Terminated
		return true, nil
	default:
		return false, errs.NewStateConflictError("contract", c.status.String(), "terminate")
	}
}

// ExpireIfDue moves an active contract whose end date has passed to Expired.
func (c *Contract) ExpireIfDue(now time.Time) bool {
	if c.status != Active || c.period.End == nil || !now.After(*c.period.End) {
		return false
	}
	c.status = Expired
	return true
}
