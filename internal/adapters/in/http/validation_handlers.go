package http

import (
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReviewRequest struct {
	Motif string `json:"motif"`
	Notes string `json:"notes"`
}

type DocumentReviewRequest struct {
	Comment string `json:"comment"`
}

type DocumentView struct {
	ID         string     `json:"id"`
	RequestID  string     `json:"request_id,omitempty"`
	Type       string     `json:"type"`
	URL        string     `json:"url"`
	UploadedAt time.Time  `json:"uploaded_at"`
	Review     string     `json:"review"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	Comment    string     `json:"comment,omitempty"`
}

type ValidationRequestView struct {
	ID              string     `json:"id"`
	CourierID       string     `json:"courier_id"`
	CourierName     string     `json:"courier_name"`
	CourierEmail    string     `json:"courier_email"`
	Status          string     `json:"status"`
	DocumentCount   int        `json:"document_count"`
	ValidatedCount  int        `json:"validated_count"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	AdminNotes      string     `json:"admin_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

// SubmitDocument handles POST /api/v1/documents, a multipart form with a
// "type" field and a "file" part.
func (s *Server) SubmitDocument(c echo.Context) error {
	docType, err := validation.ParseDocumentType(c.FormValue("type"))
	if err != nil {
		return err
	}

	upload, file, err := formUpload(c, "file")
	if err != nil {
		return err
	}
	if upload == nil {
		return commands.ErrUploadIsEmpty
	}
	defer closeAll(file)

	documentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDocumentCommand(documentID, callerID(c), docType, *upload)
	if err != nil {
		return err
	}

	if err = s.handlers.SubmitDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: documentID.String()})
}

// ListMyDocuments handles GET /api/v1/documents/mine. A URL that cannot be
// produced is left empty.
func (s *Server) ListMyDocuments(c echo.Context) error {
	ctx := c.Request().Context()
	query, err := queries.NewListDocumentsQuery(callerID(c))
	if err != nil {
		return err
	}

	list, err := s.handlers.ListDocuments.Handle(ctx, query)
	if err != nil {
		return err
	}

	response := make([]DocumentView, len(list))
	for i, d := range list {
		url, urlErr := s.storage.URLFor(ctx, d.FileRef)
		if urlErr != nil {
			s.logger.Warn("failed to build document url", zap.String("ref", d.FileRef), zap.Error(urlErr))
		}

		view := DocumentView{
			ID:         d.ID.String(),
			Type:       d.Type,
			URL:        url,
			UploadedAt: d.UploadedAt,
			Review:     d.Review,
			ReviewedAt: d.ReviewedAt,
			Comment:    d.Comment,
		}
		if d.RequestID != nil {
			view.RequestID = d.RequestID.String()
		}
		response[i] = view
	}

	return c.JSON(http.StatusOK, response)
}

// ValidateDocument handles POST /api/v1/admin/documents/:id/validate.
func (s *Server) ValidateDocument(c echo.Context) error {
	documentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req DocumentReviewRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewValidateDocumentCommand(documentID, callerID(c), req.Comment)
	if err != nil {
		return err
	}

	if err = s.handlers.ValidateDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectDocument handles POST /api/v1/admin/documents/:id/reject.
func (s *Server) RejectDocument(c echo.Context) error {
	documentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req DocumentReviewRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRejectDocumentCommand(documentID, callerID(c), req.Comment)
	if err != nil {
		return err
	}

	if err = s.handlers.RejectDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ReviewValidationRequest handles POST
// /api/v1/admin/validation-requests/:id/:decision where decision is one of
// approve, reject, under_review or reopen.
func (s *Server) ReviewValidationRequest(c echo.Context) error {
	requestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	decision, err := commands.ParseRequestDecision(c.Param("decision"))
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReviewValidationRequestCommand(requestID, callerID(c), decision, req.Motif, req.Notes)
	if err != nil {
		return err
	}

	if err = s.handlers.ReviewRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListValidationRequests handles GET /api/v1/admin/validation-requests.
// Repeated status parameters filter the list.
func (s *Server) ListValidationRequests(c echo.Context) error {
	var statuses []validation.Status
	for _, raw := range c.QueryParams()["status"] {
		status, err := validation.ParseStatus(raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListValidationRequestsQuery(statuses...)
	if err != nil {
		return err
	}

	list, err := s.handlers.ListValidationRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]ValidationRequestView, len(list))
	for i, r := range list {
		response[i] = ValidationRequestView{
			ID:              r.ID.String(),
			CourierID:       r.CourierID.String(),
			CourierName:     r.CourierName,
			CourierEmail:    r.CourierEmail,
			Status:          r.Status,
			DocumentCount:   r.DocumentCount,
			ValidatedCount:  r.ValidatedCount,
			RejectionReason: r.RejectionReason,
			AdminNotes:      r.AdminNotes,
			CreatedAt:       r.CreatedAt,
			ProcessedAt:     r.ProcessedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}
