package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/dto"
	"github.com/SscSPs/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ticketHandler handles HTTP requests related to tickets.
type ticketHandler struct {
	ticketService portssvc.TicketSvcFacade
}

// newTicketHandler creates a new ticketHandler.
func newTicketHandler(ts portssvc.TicketSvcFacade) *ticketHandler {
	return &ticketHandler{
		ticketService: ts,
	}
}

// registerTicketRoutes registers routes related to tickets.
func registerTicketRoutes(rg *gin.RouterGroup, ticketService portssvc.TicketSvcFacade) {
	h := newTicketHandler(ticketService)

	tickets := rg.Group("/tickets")
	{
		tickets.GET("", h.listTickets)
		tickets.POST("", h.createTicket)
	}
}

// listTickets godoc
// @Summary Get all tickets
// @Description Retrieves all tickets in the system without pagination
// @Tags tickets
// @Produce  json
// @Success 200 {array} dto.TicketResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list tickets"
// @Router /tickets [get]
func (h *ticketHandler) listTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tickets, err := h.ticketService.ListTickets(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list tickets")
		return
	}

	logger.Info("Tickets listed successfully", slog.Int("count", len(tickets)))
	c.JSON(http.StatusOK, dto.ToListTicketResponse(tickets))
}

// createTicket godoc
// @Summary Create a new ticket
// @Description Creates a ticket of the given type for a company. The assignee is chosen from the company's users by ticket type. Creating a strikeOff ticket resolves every other open ticket of the company.
// @Tags tickets
// @Accept  json
// @Produce  json
// @Param   ticket body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, invalid ticket type or multiple users with the required role"
// @Failure 404 {object} dto.ErrorResponse "Company or user with the required role not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate open ticket"
// @Failure 500 {object} dto.ErrorResponse "Failed to create ticket"
// @Router /tickets [post]
func (h *ticketHandler) createTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTicket", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("ticket_type", string(req.Type)), slog.Int64("company_id", req.CompanyID))
	logger.Info("Received request to create ticket")

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), req.Type, req.CompanyID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}
