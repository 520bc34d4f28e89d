package subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription constructor")

type Plan int

const (
	UnknownPlan Plan = iota
	Free
	Starter
	Premium
)

func getPlanStrings() map[Plan]string {
	return map[Plan]string{
		UnknownPlan: "unknown",
		Free:        "free",
		Starter:     "starter",
		Premium:     "premium",
	}
}

func ParsePlan(s string) (Plan, error) {
	for plan, str := range getPlanStrings() {
		if plan != UnknownPlan && str == s {
			return plan, nil
		}
	}
	return UnknownPlan, errs.NewValueIsInvalidErrorWithCause("plan", fmt.Errorf("%q is not a valid plan", s))
}

func (p Plan) Validate() error {
	if p < Free || p > Premium {
		return errs.NewValueIsInvalidErrorWithCause("plan", fmt.Errorf("%d is not a valid plan", p))
	}
	return nil
}

func (p Plan) String() string {
	if str, ok := getPlanStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// MonthlyPrice is the list price of the plan.
func (p Plan) MonthlyPrice() kernel.Money {
	var cents int64
	switch p {
	case Starter:
		cents = 990
	case Premium:
		cents = 1990
	}
	m, _ := kernel.NewMoney(decimal.New(cents, -kernel.MoneyScale))
	return m
}

// Subscription is a user's plan over a date range.
type Subscription struct {
	id           kernel.UUID
	userID       kernel.UUID
	plan         Plan
	start        time.Time
	end          time.Time
	active       bool
	monthlyPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewSubscription starts an active subscription of the given number of
// months at the plan's list price.
func NewSubscription(id, userID kernel.UUID, plan Plan, start time.Time, months int) (*Subscription, error) {
	var errList []error
	if months <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("months", months, 1, "unbounded"))
	}
	if start.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("start"))
	}
	errList = append(errList, id.Validate(), userID.Validate(), plan.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	start = start.UTC()
	return &Subscription{
		id:           id,
		userID:       userID,
		plan:         plan,
		start:        start,
		end:          start.AddDate(0, months, 0),
		active:       true,
		monthlyPrice: plan.MonthlyPrice(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func RestoreSubscription(
	id, userID kernel.UUID, plan Plan, start, end time.Time, active bool, monthlyPrice kernel.Money,
) (*Subscription, error) {
	var errList []error
	if end.Before(start) {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"end", end.Format(time.DateOnly), start.Format(time.DateOnly), "unbounded"))
	}
	errList = append(errList, id.Validate(), userID.Validate(), plan.Validate(), monthlyPrice.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Subscription{
		id:           id,
		userID:       userID,
		plan:         plan,
		start:        start,
		end:          end,
		active:       active,
		monthlyPrice: monthlyPrice,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (s *Subscription) Validate() error {
	if s == nil {
		return ErrSubscriptionIsNotConstructed
	}
	return s.guard.Validate(ErrSubscriptionIsNotConstructed)
}

func (s *Subscription) ID() kernel.UUID {
	return s.id
}

func (s *Subscription) UserID() kernel.UUID {
	return s.userID
}

func (s *Subscription) Plan() Plan {
	return s.plan
}

func (s *Subscription) Start() time.Time {
	return s.start
}

func (s *Subscription) End() time.Time {
	return s.end
}

func (s *Subscription) IsActive() bool {
	return s.active
}

func (s *Subscription) MonthlyPrice() kernel.Money {
	return s.monthlyPrice
}

// Cancel deactivates the subscription and reports whether it was active.
func (s *Subscription) Cancel() bool {
	if !s.active {
		return false
	}
	s.active = false
	return true
}

// ExpireIfDue deactivates an active subscription past its end date.
func (s *Subscription) ExpireIfDue(now time.Time) bool {
	if !s.active || !now.After(s.end) {
		return false
	}
	s.active = false
	return true
}
