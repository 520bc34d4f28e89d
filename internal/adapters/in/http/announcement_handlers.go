package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ScheduleRequest struct {
	Departure time.Time `json:"departure" validate:"required"`
	Arrival   time.Time `json:"arrival" validate:"required"`
}

type AnnouncementRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description"`
	Kind        string          `json:"kind" validate:"required,oneof=parcel person_service"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	Departure   time.Time       `json:"departure" validate:"required"`
	Arrival     time.Time       `json:"arrival" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Urgent      bool            `json:"urgent"`
	Weight      decimal.Decimal `json:"weight"`
	Dimensions  string          `json:"dimensions"`
}

type AnnouncementView struct {
	ID          string          `json:"id"`
	AuthorID    string          `json:"author_id"`
	Title       string          `json:"title"`
	Kind        string          `json:"kind"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Departure   time.Time       `json:"departure"`
	Arrival     time.Time       `json:"arrival"`
	Price       decimal.Decimal `json:"price"`
	Urgent      bool            `json:"urgent"`
	Weight      decimal.Decimal `json:"weight"`
	Views       int             `json:"views"`
	Status      string          `json:"status"`
	Proposals   int             `json:"proposals"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (r AnnouncementRequest) toDetails() (announcement.Details, error) {
	kind, err := announcement.ParseKind(r.Kind)
	if err != nil {
		return announcement.Details{}, err
	}
	route, err := kernel.NewRoute(r.Origin, r.Destination)
	if err != nil {
		return announcement.Details{}, err
	}
	schedule, err := kernel.NewSchedule(r.Departure, r.Arrival)
	if err != nil {
		return announcement.Details{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return announcement.Details{}, err
	}

	return announcement.Details{
		Title:       r.Title,
		Description: r.Description,
		Kind:        kind,
		Route:       route,
		Schedule:    schedule,
		Price:       price,
		Urgent:      r.Urgent,
		Weight:      r.Weight,
		Dimensions:  r.Dimensions,
	}, nil
}

func toAnnouncementViews(list []queries.AnnouncementResponse) []AnnouncementView {
	views := make([]AnnouncementView, len(list))
	for i, a := range list {
		views[i] = AnnouncementView{
			ID:          a.ID.String(),
			AuthorID:    a.AuthorID.String(),
			Title:       a.Title,
			Kind:        a.Kind,
			Origin:      a.Origin,
			Destination: a.Destination,
			Departure:   a.Departure,
			Arrival:     a.Arrival,
			Price:       a.Price,
			Urgent:      a.Urgent,
			Weight:      a.Weight,
			Views:       a.Views,
			Status:      a.Status,
			Proposals:   a.Proposals,
			CreatedAt:   a.CreatedAt,
		}
	}
	return views
}

// CreateAnnouncement handles POST /api/v1/announcements.
func (s *Server) CreateAnnouncement(c echo.Context) error {
	var req AnnouncementRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	details, err := req.toDetails()
	if err != nil {
		return err
	}

	announcementID := kernel.NewUUID()
	cmd, err := commands.NewCreateAnnouncementCommand(announcementID, callerID(c), details)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateAnnouncement.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: announcementID.String()})
}

// RescheduleAnnouncement handles PUT /api/v1/announcements/:id/schedule.
func (s *Server) RescheduleAnnouncement(c echo.Context) error {
	announcementID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ScheduleRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	schedule, err := kernel.NewSchedule(req.Departure, req.Arrival)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRescheduleAnnouncementCommand(announcementID, callerID(c), schedule)
	if err != nil {
		return err
	}

	if err = s.handlers.RescheduleAnnouncement.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelAnnouncement handles POST /api/v1/announcements/:id/cancel.
func (s *Server) CancelAnnouncement(c echo.Context) error {
	announcementID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelAnnouncementCommand(announcementID, callerID(c))
	if err != nil {
		return err
	}

	if err = s.handlers.CancelAnnouncement.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterAnnouncementView handles POST /api/v1/announcements/:id/views.
func (s *Server) RegisterAnnouncementView(c echo.Context) error {
	announcementID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterAnnouncementViewCommand(announcementID)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterView.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMyAnnouncements handles GET /api/v1/announcements/mine.
func (s *Server) ListMyAnnouncements(c echo.Context) error {
	query, err := queries.NewListMyAnnouncementsQuery(callerID(c))
	if err != nil {
		return err
	}

	list, err := s.handlers.ListMyAnnouncements.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAnnouncementViews(list))
}

// ListAvailableAnnouncements handles GET /api/v1/announcements/available.
func (s *Server) ListAvailableAnnouncements(c echo.Context) error {
	query, err := queries.NewListAvailableAnnouncementsQuery(callerID(c))
	if err != nil {
		return err
	}

	list, err := s.handlers.ListAvailable.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAnnouncementViews(list))
}
