package api

import (
	"errors"
	"net/http"
	"strconv"

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

type RateAdminHandler struct {
	rateCommands commands.RateCommands
	rateQueries  queries.RateQueries
}

func NewRateAdminHandler(rateCommands commands.RateCommands, rateQueries queries.RateQueries) *RateAdminHandler {
	return &RateAdminHandler{
		rateCommands: rateCommands,
		rateQueries:  rateQueries,
	}
}

// @Summary Get rate configuration
// @Description Get the current rate card for a category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Success 200 {object} resdto.Envelope{data=resdto.RateConfigResponse}
// @Failure 404 {object} httperr.Response
// @Router /admin/rates/{key} [get]
func (h *RateAdminHandler) GetRateConfig(c *gin.Context) {
	view, err := h.rateQueries.GetConfig(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.abortRateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromRateConfigView(view)))
}

// @Summary Update rate configuration
// @Description Replace a category's rate card; the change is validated and audited
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param request body reqdto.UpdateRateConfigRequest true "New rate card"
// @Success 200 {object} resdto.Envelope{data=resdto.RateConfigResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/rates/{key} [put]
func (h *RateAdminHandler) UpdateRateConfig(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	var req reqdto.UpdateRateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	view, err := h.rateCommands.UpdateRateConfig(c.Request.Context(), commands.UpdateRateConfigParams{
		Key:    c.Param("key"),
		Value:  req.Value,
		Reason: req.Reason,
		Actor:  actor,
	})
	if err != nil {
		h.abortRateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromRateConfigView(view)))
}

// @Summary List rate configuration changes
// @Description List the audited change history for a category, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param limit query int false "Maximum number of changes to return"
// @Success 200 {object} resdto.Envelope{data=[]resdto.RateConfigChangeResponse}
// @Router /admin/rates/{key}/changes [get]
func (h *RateAdminHandler) ListRateConfigChanges(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.rateQueries.ListChanges(c.Request.Context(), c.Param("key"), limit)
	if err != nil {
		h.abortRateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromRateConfigChangeViews(views)))
}

// @Summary List pricing modifiers
// @Description List all configured pricing modifiers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.ModifierResponse}
// @Router /admin/modifiers [get]
func (h *RateAdminHandler) ListModifiers(c *gin.Context) {
	views, err := h.rateQueries.ListModifiers(c.Request.Context())
	if err != nil {
		h.abortRateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromModifierViews(views)))
}

// @Summary Create pricing modifier
// @Description Create a discount or surcharge modifier
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateModifierRequest true "Modifier definition"
// @Success 201 {object} resdto.Envelope{data=map[string]string}
// @Failure 422 {object} httperr.Response
// @Router /admin/modifiers [post]
func (h *RateAdminHandler) CreateModifier(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user context"), httperr.CodeInternal, "Internal server error")
		return
	}

	var req reqdto.CreateModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	id, err := h.rateCommands.CreateModifier(c.Request.Context(), req.ToDomain(), actor)
	if err != nil {
		h.abortRateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.OK(gin.H{"id": id.String()}))
}

// @Summary Activate or deactivate a modifier
// @Description Toggle whether a modifier participates in pricing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Modifier ID"
// @Param request body reqdto.SetModifierActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/modifiers/{id} [patch]
func (h *RateAdminHandler) SetModifierActive(c *gin.Context) {
	modifierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid modifier ID")
		return
	}

	var req reqdto.SetModifierActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request format")
		return
	}

	if err := h.rateCommands.SetModifierActive(c.Request.Context(), modifierID, *req.Active); err != nil {
		h.abortRateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RateAdminHandler) abortRateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRateConfigNotFound), errors.Is(err, errs.ErrModifierNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Not found")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeUnprocessable, "Configuration failed validation")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	}
}
