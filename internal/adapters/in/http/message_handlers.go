package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type MessageRequest struct {
	ReceiverID     string `json:"receiver_id" validate:"required,uuid"`
	AnnouncementID string `json:"announcement_id" validate:"omitempty,uuid"`
	Content        string `json:"content" validate:"required,max=4000"`
}

type MessageView struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	AnnouncementID string    `json:"announcement_id,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginRecordView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	IP        string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
}

// SendMessage handles POST /api/v1/messages.
func (s *Server) SendMessage(c echo.Context) error {
	var req MessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return err
	}
	announcementID, err := optionalUUID("announcement_id", req.AnnouncementID)
	if err != nil {
		return err
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewSendMessageCommand(messageID, callerID(c), receiverID, announcementID, req.Content)
	if err != nil {
		return err
	}

	if err = s.handlers.SendMessage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: messageID.String()})
}

// ListMessages handles GET /api/v1/messages?receiver=<id>&announcement=<id>.
func (s *Server) ListMessages(c echo.Context) error {
	receiverID, err := queryUUID(c, "receiver")
	if err != nil {
		return err
	}
	announcementID, err := queryUUID(c, "announcement")
	if err != nil {
		return err
	}

	query, err := queries.NewListMessagesQuery(callerID(c), principalFrom(c).Role == user.Admin,
		queries.MessageFilter{ReceiverID: receiverID, AnnouncementID: announcementID})
	if err != nil {
		return err
	}

	list, err := s.handlers.ListMessages.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MessageView, len(list))
	for i, m := range list {
		response[i] = MessageView{
			ID:         m.ID.String(),
			SenderID:   m.SenderID.String(),
			ReceiverID: m.ReceiverID.String(),
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		}
		if m.AnnouncementID != nil {
			response[i].AnnouncementID = m.AnnouncementID.String()
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListLoginRecords handles GET /api/v1/admin/login-records?user=<id>&limit=100.
func (s *Server) ListLoginRecords(c echo.Context) error {
	userID, err := queryUUID(c, "user")
	if err != nil {
		return err
	}
	var limit *int
	if err = queryParam(c, "limit", false, &limit); err != nil {
		return err
	}

	size := 0
	if limit != nil {
		size = *limit
	}
	query, err := queries.NewListLoginRecordsQuery(userID, size)
	if err != nil {
		return err
	}

	records, err := s.handlers.ListLoginRecords.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]LoginRecordView, len(records))
	for i, r := range records {
		response[i] = LoginRecordView{
			ID:        r.ID.String(),
			UserID:    r.UserID.String(),
			Username:  r.Username,
			IP:        r.IP,
			UserAgent: r.UserAgent,
			LoggedAt:  r.LoggedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}
