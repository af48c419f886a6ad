package api

import (
	"errors"
	"net/http"
	"strconv"

	"tour-booking-api/internal/domain/tour"
	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TourHandler struct {
	tourQueries    queries.TourQueries
	ticketCommands commands.TicketCommands
}

func NewTourHandler(tourQueries queries.TourQueries, ticketCommands commands.TicketCommands) *TourHandler {
	return &TourHandler{
		tourQueries:    tourQueries,
		ticketCommands: ticketCommands,
	}
}

// @Summary List open tours
// @Description List tours currently open for booking
// @Tags tours
// @Produce json
// @Param limit query int false "Maximum number of tours to return"
// @Success 200 {object} resdto.Envelope{data=[]resdto.TourResponse}
// @Router /tours [get]
func (h *TourHandler) ListTours(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.tourQueries.ListOpen(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromTourViews(views)))
}

// @Summary Check tour availability
// @Description Advisory remaining-seat check; the purchase path re-checks under lock
// @Tags tours
// @Produce json
// @Param id path string true "Tour ID"
// @Param quantity query int false "Requested seat count" default(1)
// @Success 200 {object} resdto.Envelope{data=resdto.AvailabilityResponse}
// @Failure 404 {object} httperr.Response
// @Router /tours/{id}/availability [get]
func (h *TourHandler) CheckAvailability(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid tour ID")
		return
	}

	quantity, err := strconv.ParseInt(c.DefaultQuery("quantity", "1"), 10, 32)
	if err != nil || quantity < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid quantity"), httperr.CodeValidationFailed, "Quantity must be a positive integer")
		return
	}

	view, err := h.tourQueries.CheckAvailability(c.Request.Context(), tourID, int32(quantity))
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Tour not found")
		case errors.Is(err, tour.ErrInvalidTicketCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Quantity must be a positive integer")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromAvailabilityView(view)))
}

// @Summary Purchase tickets
// @Description Purchase seats on a shared tour with oversell protection
// @Tags tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body reqdto.PurchaseTicketRequest true "Purchase request"
// @Success 201 {object} resdto.Envelope{data=resdto.TicketResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tours/{id}/tickets [post]
func (h *TourHandler) PurchaseTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid tour ID")
		return
	}

	var req reqdto.PurchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	result, err := h.ticketCommands.PurchaseTicket(c.Request.Context(), commands.PurchaseTicketParams{
		TourID:   tourID,
		Quantity: req.Quantity,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTourNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Tour not found")
		case errors.Is(err, commands.ErrTourNotOpen):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Tour is not open for booking")
		case errors.Is(err, errs.ErrTourSoldOut):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Tour is sold out")
		case errors.Is(err, errs.ErrInsufficientCapacity):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Not enough seats remaining")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "Invalid ticket request")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OK(&resdto.TicketResponse{
		TicketID:       result.TicketID,
		TourID:         result.TourID,
		Quantity:       result.Quantity,
		AmountCents:    result.AmountCents,
		SeatsRemaining: result.SeatsRemaining,
	}))
}
