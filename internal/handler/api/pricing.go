package api

import (
	"errors"
	"net/http"

	"tour-booking-api/internal/domain/pricing"
	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Calculate quote
// @Description Price a tour request without creating a booking
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.Envelope{data=resdto.QuoteResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	quote, err := h.pricingQueries.CalculateQuote(c.Request.Context(), queries.QuoteRequest{
		CategoryKey:           req.CategoryKey,
		Date:                  date,
		DurationHours:         req.DurationHours,
		PartySize:             req.PartySize,
		CustomDiscountPercent: req.CustomDiscountPercent,
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Rate configuration not found")
		case errors.Is(err, pricing.ErrNoMatchingTier):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "No rate tier matches the party size")
		case errors.Is(err, errs.ErrRateConfigMalformed):
			// Configuration details stay server-side
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		case errors.Is(err, pricing.ErrInvalidDuration),
			errors.Is(err, pricing.ErrInvalidPartySize),
			errors.Is(err, pricing.ErrInvalidDiscountPercent):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromQuote(quote)))
}
