package api

import (
	"errors"
	"net/http"
	"strconv"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/domain/user"
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

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a priced booking with idempotency key
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, err.Error())
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	tourDate, err := req.ParseTourDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid tour date format, expected YYYY-MM-DD")
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		CategoryKey:           req.CategoryKey,
		TourDate:              tourDate,
		DurationHours:         req.DurationHours,
		PartySize:             req.PartySize,
		CustomDiscountPercent: req.CustomDiscountPercent,
	}, userID, idempotencyKey)
	if err != nil {
		h.abortBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.OK(resdto.FromBookingView(result.Booking)))
}

// @Summary Get booking
// @Description Get a booking with its full price breakdown
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid booking ID")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, isStaff(c), bookingID)
	if err != nil {
		h.abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingView(view)))
}

// @Summary List own bookings
// @Description List the authenticated user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of bookings to return"
// @Success 200 {object} resdto.Envelope{data=[]resdto.BookingListResponse}
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingListItems(items)))
}

// @Summary Recalculate booking
// @Description Re-price a booking from current rate configuration
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/recalculate [post]
func (h *BookingHandler) RecalculateBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid booking ID")
		return
	}

	view, err := h.bookingCommands.RecalculateBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Cancelled bookings cannot be repriced")
		default:
			h.abortBookingError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingView(view)))
}

// @Summary Create deposit payment intent
// @Description Create a payment intent for the booking's deposit amount
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.Envelope{data=resdto.DepositIntentResponse}
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/deposit-intent [post]
func (h *BookingHandler) CreateDepositIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid booking ID")
		return
	}

	intent, err := h.bookingCommands.CreateDepositIntent(c.Request.Context(), bookingID, userID, isStaff(c))
	if err != nil {
		h.abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.OK(&resdto.DepositIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}))
}

func (h *BookingHandler) abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found")
	case errors.Is(err, errs.ErrRateConfigNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Rate configuration not found")
	case errors.Is(err, commands.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Duplicate request with different parameters")
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Request is currently being processed")
	case errors.Is(err, booking.ErrDateInPast):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "Tour date cannot be in the past")
	case errors.Is(err, errs.ErrNoMatchingTier), errors.Is(err, pricing.ErrNoMatchingTier):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "No rate tier matches the party size")
	case errors.Is(err, errs.ErrRateConfigMalformed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "Booking request failed validation")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "Idempotency-Key must be a UUID")
	}
	return key, nil
}

func isStaff(c *gin.Context) bool {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return false
	}
	return role == user.RoleOperator || role == user.RoleAdmin
}
