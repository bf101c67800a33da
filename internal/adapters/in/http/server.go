// Package http exposes the parcel lifecycle operations over a JSON REST API.
// It coordinates between HTTP handlers and application use cases, translating
// the domain error taxonomy into status codes.
package http

import (
	"net/http"
	"strconv"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the parcel delivery service.
type Server struct {
	// Command handlers
	bookParcelHandler         commands.BookParcelCommandHandler
	assignParcelHandler       commands.AssignParcelCommandHandler
	updateAssignmentHandler   commands.UpdateAssignmentCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	markParcelPaidHandler     commands.MarkParcelPaidCommandHandler
	createAgentHandler        commands.CreateAgentCommandHandler
	submitReviewHandler       commands.SubmitReviewCommandHandler

	// Query handlers
	topAgentsHandler             queries.TopAgentsQueryHandler
	getAgentReviewsHandler       queries.GetAgentReviewsQueryHandler
	getUncompletedParcelsHandler queries.GetUncompletedParcelsQueryHandler
	getParcelHandler             queries.GetParcelQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookParcelHandler commands.BookParcelCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	updateAssignmentHandler commands.UpdateAssignmentCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	markParcelPaidHandler commands.MarkParcelPaidCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	topAgentsHandler queries.TopAgentsQueryHandler,
	getAgentReviewsHandler queries.GetAgentReviewsQueryHandler,
	getUncompletedParcelsHandler queries.GetUncompletedParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
) *Server {
	return &Server{
		bookParcelHandler:            bookParcelHandler,
		assignParcelHandler:          assignParcelHandler,
		updateAssignmentHandler:      updateAssignmentHandler,
		updateParcelStatusHandler:    updateParcelStatusHandler,
		markParcelPaidHandler:        markParcelPaidHandler,
		createAgentHandler:           createAgentHandler,
		submitReviewHandler:          submitReviewHandler,
		topAgentsHandler:             topAgentsHandler,
		getAgentReviewsHandler:       getAgentReviewsHandler,
		getUncompletedParcelsHandler: getUncompletedParcelsHandler,
		getParcelHandler:             getParcelHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.BookParcel)
	api.GET("/parcels/uncompleted", s.GetUncompletedParcels)
	api.GET("/parcels/:id", s.GetParcel)
	api.POST("/parcels/:id/assignment", s.AssignParcel)
	api.PUT("/parcels/:id/assignment", s.UpdateAssignment)
	api.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	api.PATCH("/parcels/:id/paid", s.MarkParcelPaid)

	api.POST("/agents", s.CreateAgent)
	api.GET("/agents/top", s.GetTopAgents)
	api.GET("/agents/:id/reviews", s.GetAgentReviews)

	api.POST("/reviews", s.SubmitReview)
}

// BookParcel handles POST /api/v1/parcels - books a new parcel delivery.
func (s *Server) BookParcel(ctx echo.Context) error {
	var req BookParcelRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	sender, err := kernel.NewContact(req.Sender.Name, req.Sender.Email, req.Sender.Phone)
	if err != nil {
		return errorJSON(ctx, err)
	}

	receiver, err := kernel.NewContact(req.Receiver.Name, req.Receiver.Email, req.Receiver.Phone)
	if err != nil {
		return errorJSON(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewBookParcelCommand(
		parcelID,
		sender,
		receiver,
		req.WeightKg,
		req.Cost,
		req.RequestedDeliveryDate,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.bookParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: parcelID.String()})
}

// AssignParcel handles POST /api/v1/parcels/:id/assignment - assigns a pending
// parcel to a delivery agent. Responds with the updated parcel snapshot,
// which carries the created assignment.
func (s *Server) AssignParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AssignParcelRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	agentContact, err := kernel.NewContact(req.Agent.Name, req.Agent.Email, req.Agent.Phone)
	if err != nil {
		return errorJSON(ctx, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignParcelCommand(
		assignmentID,
		parcelID,
		agentID,
		agentContact,
		req.ApproximateDeliveryDate,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.parcelSnapshot(ctx, parcelID, http.StatusCreated)
}

// UpdateAssignment handles PUT /api/v1/parcels/:id/assignment - replaces the
// assignment of an in-transit parcel with corrected agent or date details.
// Responds with the updated parcel snapshot carrying the replacement.
func (s *Server) UpdateAssignment(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AssignParcelRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	agentContact, err := kernel.NewContact(req.Agent.Name, req.Agent.Email, req.Agent.Phone)
	if err != nil {
		return errorJSON(ctx, err)
	}

	newAssignmentID := kernel.NewUUID()
	cmd, err := commands.NewUpdateAssignmentCommand(
		newAssignmentID,
		parcelID,
		agentID,
		agentContact,
		req.ApproximateDeliveryDate,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.updateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.parcelSnapshot(ctx, parcelID, http.StatusOK)
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:id/status - moves a parcel
// through its lifecycle (deliver or cancel) and responds with the updated
// parcel snapshot.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req UpdateParcelStatusRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	targetStatus, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, targetStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.parcelSnapshot(ctx, parcelID, http.StatusOK)
}

// MarkParcelPaid handles PATCH /api/v1/parcels/:id/paid - marks a parcel as paid.
func (s *Server) MarkParcelPaid(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkParcelPaidCommand(parcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.markParcelPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.parcelSnapshot(ctx, parcelID, http.StatusOK)
}

// CreateAgent handles POST /api/v1/agents - registers a new delivery agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	contact, err := kernel.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return errorJSON(ctx, err)
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(agentID, contact)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: agentID.String()})
}

// SubmitReview handles POST /api/v1/reviews - records a review for the agent
// who delivered a parcel.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req SubmitReviewRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(reviewID, parcelID, reviewerID, req.Rating, req.Comment)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: reviewID.String()})
}

// GetTopAgents handles GET /api/v1/agents/top - retrieves the agent leaderboard.
func (s *Server) GetTopAgents(ctx echo.Context) error {
	limit := defaultTopAgentsLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	query, err := queries.NewTopAgentsQuery(limit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	agents, err := s.topAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		response[i] = AgentResponse{
			ID:            agent.ID.String(),
			Name:          agent.Name,
			Email:         agent.Email,
			Phone:         agent.Phone,
			TotalReviews:  agent.TotalReviews,
			AverageRating: agent.AverageRating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentReviews handles GET /api/v1/agents/:id/reviews - retrieves an
// agent's review history, newest first.
func (s *Server) GetAgentReviews(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetAgentReviewsQuery(agentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	reviews, err := s.getAgentReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		response[i] = ReviewResponse{
			ID:         review.ID.String(),
			ParcelID:   review.ParcelID.String(),
			ReviewerID: review.ReviewerID.String(),
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUncompletedParcels handles GET /api/v1/parcels/uncompleted - retrieves
// parcels still moving through the lifecycle.
func (s *Server) GetUncompletedParcels(ctx echo.Context) error {
	query := queries.NewGetUncompletedParcelsQuery()

	parcels, err := s.getUncompletedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:                    p.ID.String(),
			SenderName:            p.SenderName,
			ReceiverName:          p.ReceiverName,
			WeightKg:              p.WeightKg,
			Cost:                  p.Cost,
			RequestedDeliveryDate: p.RequestedDeliveryDate,
			Status:                p.Status.String(),
			Paid:                  p.Paid,
			BookedAt:              p.BookedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /api/v1/parcels/:id - retrieves one parcel snapshot,
// including its active assignment when present.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	return s.parcelSnapshot(ctx, parcelID, http.StatusOK)
}

// parcelSnapshot responds with the current state of one parcel. The write
// endpoints use it too, so every mutation reports the post-operation state.
func (s *Server) parcelSnapshot(ctx echo.Context, parcelID kernel.UUID, status int) error {
	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	snapshot, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := ParcelDetailResponse{
		ID: snapshot.ID.String(),
		Sender: ContactResponse{
			Name:  snapshot.Sender.Name(),
			Email: snapshot.Sender.Email(),
			Phone: snapshot.Sender.Phone(),
		},
		Receiver: ContactResponse{
			Name:  snapshot.Receiver.Name(),
			Email: snapshot.Receiver.Email(),
			Phone: snapshot.Receiver.Phone(),
		},
		WeightKg:              snapshot.WeightKg,
		Cost:                  snapshot.Cost,
		RequestedDeliveryDate: snapshot.RequestedDeliveryDate,
		Status:                snapshot.Status.String(),
		Paid:                  snapshot.Paid,
		BookedAt:              snapshot.BookedAt,
		UpdatedAt:             snapshot.UpdatedAt,
	}

	if record := snapshot.Assignment; record != nil {
		response.Assignment = &AssignmentResponse{
			ID:      record.ID.String(),
			AgentID: record.AgentID.String(),
			Agent: ContactResponse{
				Name:  record.AgentContact.Name(),
				Email: record.AgentContact.Email(),
				Phone: record.AgentContact.Phone(),
			},
			ApproximateDeliveryDate: record.ApproximateDeliveryDate,
			CreatedAt:               record.CreatedAt,
		}
	}

	return ctx.JSON(status, response)
}

const defaultTopAgentsLimit = 10

// bind decodes and validates the request body, responding with 400 on failure.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return nil
}

// BookParcelRequest is the payload for booking a parcel.
type BookParcelRequest struct {
	Sender                ContactRequest `json:"sender" validate:"required"`
	Receiver              ContactRequest `json:"receiver" validate:"required"`
	WeightKg              float64        `json:"weightKg" validate:"required,gt=0"`
	Cost                  float64        `json:"cost" validate:"gte=0"`
	RequestedDeliveryDate time.Time      `json:"requestedDeliveryDate" validate:"required"`
}

// ContactRequest carries contact details in request payloads.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// AssignParcelRequest is the payload for assigning a parcel to an agent,
// also used when correcting an existing assignment.
type AssignParcelRequest struct {
	AgentID                 string         `json:"agentId" validate:"required,uuid"`
	Agent                   ContactRequest `json:"agent" validate:"required"`
	ApproximateDeliveryDate time.Time      `json:"approximateDeliveryDate" validate:"required"`
}

// UpdateParcelStatusRequest is the payload for lifecycle transitions.
type UpdateParcelStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateAgentRequest is the payload for registering a delivery agent.
type CreateAgentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// SubmitReviewRequest is the payload for reviewing a delivered parcel.
type SubmitReviewRequest struct {
	ParcelID   string `json:"parcelId" validate:"required,uuid"`
	ReviewerID string `json:"reviewerId" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// IDResponse returns the identifier generated for a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// AgentResponse represents one agent in the leaderboard payload.
type AgentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// ReviewResponse represents one review in the agent history payload.
type ReviewResponse struct {
	ID         string    `json:"id"`
	ParcelID   string    `json:"parcelId"`
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ContactResponse carries contact details in response payloads.
type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AssignmentResponse represents the active assignment within a parcel detail
// payload.
type AssignmentResponse struct {
	ID                      string          `json:"id"`
	AgentID                 string          `json:"agentId"`
	Agent                   ContactResponse `json:"agent"`
	ApproximateDeliveryDate time.Time       `json:"approximateDeliveryDate"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ParcelDetailResponse represents one parcel snapshot, returned by the
// single-parcel read and by every endpoint that mutates a parcel.
type ParcelDetailResponse struct {
	ID                    string              `json:"id"`
	Sender                ContactResponse     `json:"sender"`
	Receiver              ContactResponse     `json:"receiver"`
	WeightKg              float64             `json:"weightKg"`
	Cost                  float64             `json:"cost"`
	RequestedDeliveryDate time.Time           `json:"requestedDeliveryDate"`
	Status                string              `json:"status"`
	Paid                  bool                `json:"paid"`
	BookedAt              time.Time           `json:"bookedAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
	Assignment            *AssignmentResponse `json:"assignment,omitempty"`
}

// ParcelResponse represents one active parcel in the listing payload.
type ParcelResponse struct {
	ID                    string    `json:"id"`
	SenderName            string    `json:"senderName"`
	ReceiverName          string    `json:"receiverName"`
	WeightKg              float64   `json:"weightKg"`
	Cost                  float64   `json:"cost"`
	RequestedDeliveryDate time.Time `json:"requestedDeliveryDate"`
	Status                string    `json:"status"`
	Paid                  bool      `json:"paid"`
	BookedAt              time.Time `json:"bookedAt"`
}
