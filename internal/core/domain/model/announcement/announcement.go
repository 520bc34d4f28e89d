package announcement

import (
	"errors"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAnnouncementIsNotConstructed = errors.New("Announcement must be created via NewAnnouncement constructor")

// Details is the content of an announcement as written by its author.
type Details struct {
	Title       string
	Description string
	Kind        Kind
	Route       kernel.Route
	Schedule    kernel.Schedule
	Price       kernel.Money
	Urgent      bool
	Weight      decimal.Decimal
	Dimensions  string
}

func (d Details) validate() error {
	var errList []error
	if strings.TrimSpace(d.Title) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if d.Weight.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", d.Weight.String(), 0, "unbounded"))
	}
	errList = append(errList,
		d.Kind.Validate(),
		d.Route.Validate(),
		d.Schedule.Validate(),
		d.Price.Validate(),
	)
	return errors.Join(errList...)
}

// Announcement is a posted request for transport, open to courier proposals.
// It is the source of truth for the schedule of its deliveries.
type Announcement struct {
	id        kernel.UUID
	authorID  kernel.UUID
	details   Details
	views     int
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewAnnouncement publishes an active announcement.
//
// Example:
//
//	route, _ := kernel.NewRoute("Paris", "Lyon")
//	schedule, _ := kernel.NewSchedule(departure, arrival)
//	price, _ := kernel.MoneyFromString("49.90")
//	a, err := announcement.NewAnnouncement(kernel.NewUUID(), clientID, announcement.Details{
//	    Title: "Box of books", Kind: announcement.Parcel,
//	    Route: route, Schedule: schedule, Price: price,
//	}, time.Now())
func NewAnnouncement(id, authorID kernel.UUID, details Details, now time.Time) (*Announcement, error) {
	if err := errors.Join(id.Validate(), authorID.Validate(), details.validate()); err != nil {
		return nil, err
	}

	details.Title = strings.TrimSpace(details.Title)
	return &Announcement{
		id:        id,
		authorID:  authorID,
		details:   details,
		status:    Active,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAnnouncement rebuilds an announcement loaded from the store.
func RestoreAnnouncement(
	id, authorID kernel.UUID, details Details, views int, status Status, createdAt time.Time,
) (*Announcement, error) {
	a, err := NewAnnouncement(id, authorID, details, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	a.views = views
	a.status = status
	a.createdAt = createdAt
	return a, nil
}

func (a *Announcement) Validate() error {
	if a == nil {
		return ErrAnnouncementIsNotConstructed
	}
	return a.guard.Validate(ErrAnnouncementIsNotConstructed)
}

func (a *Announcement) ID() kernel.UUID {
	return a.id
}

func (a *Announcement) AuthorID() kernel.UUID {
	return a.authorID
}

func (a *Announcement) Details() Details {
	return a.details
}

func (a *Announcement) Schedule() kernel.Schedule {
	return a.details.Schedule
}

func (a *Announcement) Price() kernel.Money {
	return a.details.Price
}

func (a *Announcement) Views() int {
	return a.views
}

func (a *Announcement) Status() Status {
	return a.status
}

func (a *Announcement) CreatedAt() time.Time {
	return a.createdAt
}

// IsAuthoredBy reports whether userID published the announcement.
func (a *Announcement) IsAuthoredBy(userID kernel.UUID) bool {
	return a.authorID.IsEqual(userID)
}

// AcceptsProposals fails once the announcement is completed or cancelled.
func (a *Announcement) AcceptsProposals() error {
	if !a.status.IsOpen() {
		return a.status.conflict("propose on")
	}
	return nil
}

// MarkInProgress is applied on the first proposal.
func (a *Announcement) MarkInProgress() (bool, error) {
	switch a.status {
	case InProgress:
		return false, nil
	case Active:
		a.status = InProgress
		return true, nil
	default:
		return false, a.status.conflict("start")
	}
}

// Complete is applied when the accepted delivery is delivered.
func (a *Announcement) Complete() (bool, error) {
	switch a.status {
	case Completed:
		return false, nil
	case Active, InProgress:
		a.status = Completed
		return true, nil
	default:
		return false, a.status.conflict("complete")
	}
}

// Cancel withdraws an open announcement.
func (a *Announcement) Cancel() (bool, error) {
	switch a.status {
	case Cancelled:
		return false, nil
	case Active, InProgress:
		a.status = Cancelled
		return true, nil
	default:
		return false, a.status.conflict("cancel")
	}
}

// Reschedule replaces the schedule of an open announcement. It reports
// false when the schedule is unchanged.
func (a *Announcement) Reschedule(schedule kernel.Schedule) (bool, error) {
	if err := schedule.Validate(); err != nil {
		return false, err
	}
	if !a.status.IsOpen() {
		return false, a.status.conflict("reschedule")
	}
	if a.details.Schedule.Equal(schedule) {
		return false, nil
	}
	a.details.Schedule = schedule
	return true, nil
}

// RegisterView increments the view counter.
func (a *Announcement) RegisterView() {
	a.views++
}
