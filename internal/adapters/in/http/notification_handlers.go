package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications handles GET /api/v1/notifications?unread=true.
func (s *Server) ListNotifications(c echo.Context) error {
	var unread *bool
	if err := queryParam(c, "unread", false, &unread); err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(callerID(c), unread != nil && *unread)
	if err != nil {
		return err
	}

	list, err := s.handlers.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]NotificationView, len(list))
	for i, n := range list {
		response[i] = NotificationView{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Kind:      n.Kind,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	return s.markRead(c, nil)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.markRead(c, &notificationID)
}

func (s *Server) markRead(c echo.Context, notificationID *kernel.UUID) error {
	cmd, err := commands.NewMarkNotificationsReadCommand(callerID(c), notificationID)
	if err != nil {
		return err
	}

	if err = s.handlers.MarkNotificationsRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
