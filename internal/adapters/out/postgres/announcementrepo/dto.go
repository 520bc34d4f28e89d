// Package announcementrepo persists announcements. The row lock taken by
// GetForUpdate serializes proposals and acceptances on one announcement.
package announcementrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AnnouncementDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AuthorID    uuid.UUID       `gorm:"type:uuid;index"`
	Title       string          `gorm:"size:255"`
	Description string
	Kind        int
	Route       RouteDTO        `gorm:"embedded"`
	Schedule    ScheduleDTO     `gorm:"embedded"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Urgent      bool
	Weight      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Dimensions  string          `gorm:"size:100"`
	Views       int
	Status      int `gorm:"index"`
	CreatedAt   time.Time
}

func (AnnouncementDTO) TableName() string {
	return "announcements"
}

type RouteDTO struct {
	Origin      string `gorm:"size:255"`
	Destination string `gorm:"size:255"`
}

type ScheduleDTO struct {
	Departure time.Time
	Arrival   time.Time
}

func fromDomain(a *announcement.Announcement) AnnouncementDTO {
	details := a.Details()
	return AnnouncementDTO{
		ID:          a.ID().Bytes(),
		AuthorID:    a.AuthorID().Bytes(),
		Title:       details.Title,
		Description: details.Description,
		Kind:        int(details.Kind),
		Route: RouteDTO{
			Origin:      details.Route.Origin(),
			Destination: details.Route.Destination(),
		},
		Schedule: ScheduleDTO{
			Departure: details.Schedule.Departure(),
			Arrival:   details.Schedule.Arrival(),
		},
		Price:      details.Price.Decimal(),
		Urgent:     details.Urgent,
		Weight:     details.Weight,
		Dimensions: details.Dimensions,
		Views:      a.Views(),
		Status:     int(a.Status()),
		CreatedAt:  a.CreatedAt(),
	}
}

func toDomain(dto AnnouncementDTO) (*announcement.Announcement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.Route.Origin, dto.Route.Destination)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewSchedule(dto.Schedule.Departure, dto.Schedule.Arrival)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return announcement.RestoreAnnouncement(id, authorID, announcement.Details{
		Title:       dto.Title,
		Description: dto.Description,
		Kind:        announcement.Kind(dto.Kind),
		Route:       route,
		Schedule:    schedule,
		Price:       price,
		Urgent:      dto.Urgent,
		Weight:      dto.Weight,
		Dimensions:  dto.Dimensions,
	}, dto.Views, announcement.Status(dto.Status), dto.CreatedAt)
}
