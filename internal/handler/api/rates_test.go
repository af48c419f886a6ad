//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tour-booking-api/internal/handler/api"
	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/tests/common/builder"
	"tour-booking-api/tests/common/httptest"
	commandsmock "tour-booking-api/tests/mock/commands"
	queriesmock "tour-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RateAdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRateCommands
	mockQueries  *queriesmock.MockRateQueries
	handler      *api.RateAdminHandler
	adminID      uuid.UUID
}

func (s *RateAdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRateQueries(s.mockCtrl)
	s.handler = api.NewRateAdminHandler(s.mockCommands, s.mockQueries)
	s.adminID = uuid.New()

	// Mock authenticated-admin middleware behavior
	admin := func(c *gin.Context) {
		c.Set("user_id", s.adminID)
		c.Next()
	}
	s.router.GET("/admin/rates/:key", admin, s.handler.GetRateConfig)
	s.router.PUT("/admin/rates/:key", admin, s.handler.UpdateRateConfig)
	s.router.GET("/admin/rates/:key/changes", admin, s.handler.ListRateConfigChanges)
	s.router.GET("/admin/modifiers", admin, s.handler.ListModifiers)
	s.router.POST("/admin/modifiers", admin, s.handler.CreateModifier)
	s.router.PATCH("/admin/modifiers/:id", admin, s.handler.SetModifierActive)
}

func (s *RateAdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRateAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(RateAdminHandlerTestSuite))
}

func (s *RateAdminHandlerTestSuite) rateConfigView() *queries.RateConfigView {
	return &queries.RateConfigView{
		Key:       "wine_tours",
		Value:     builder.NewRateCardBuilder().BuildJSON(),
		UpdatedAt: time.Now(),
	}
}

func (s *RateAdminHandlerTestSuite) TestGetRateConfig() {
	s.Run("success: returns the stored card", func() {
		view := s.rateConfigView()
		s.mockQueries.EXPECT().GetConfig(gomock.Any(), "wine_tours").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rates/wine_tours", nil, "")

		var response resdto.RateConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("wine_tours", response.Key)
	})

	s.Run("error: 404 for an unknown category", func() {
		s.mockQueries.EXPECT().GetConfig(gomock.Any(), "ghost_tours").
			Return(nil, errs.ErrRateConfigNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rates/ghost_tours", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *RateAdminHandlerTestSuite) TestUpdateRateConfig() {
	url := "/admin/rates/wine_tours"
	reqBody := reqdto.UpdateRateConfigRequest{
		Value:  json.RawMessage(builder.NewRateCardBuilder().BuildJSON()),
		Reason: "seasonal rate adjustment",
	}

	s.Run("success: returns the updated card", func() {
		view := s.rateConfigView()
		s.mockCommands.EXPECT().
			UpdateRateConfig(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when the card fails validation", func() {
		s.mockCommands.EXPECT().
			UpdateRateConfig(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Configuration failed validation")
	})

	s.Run("error: 400 when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateRateConfigRequest{Value: json.RawMessage(`{}`)}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RateAdminHandlerTestSuite) TestListRateConfigChanges() {
	s.Run("success: returns the audit trail newest first", func() {
		changes := []*queries.RateConfigChangeView{
			{ID: uuid.New(), ConfigKey: "wine_tours", Actor: s.adminID, Reason: "raise weekend rates", CreatedAt: time.Now()},
			{ID: uuid.New(), ConfigKey: "wine_tours", Actor: s.adminID, Reason: "initial import", CreatedAt: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListChanges(gomock.Any(), "wine_tours", 50).Return(changes, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rates/wine_tours/changes", nil, "")

		var response []resdto.RateConfigChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("raise weekend rates", response[0].Reason)
	})
}

func (s *RateAdminHandlerTestSuite) TestCreateModifier() {
	url := "/admin/modifiers"
	percent := int64(1000)
	reqBody := reqdto.CreateModifierRequest{
		Name:       "early bird",
		Kind:       "discount",
		PercentBps: &percent,
		Active:     true,
	}

	s.Run("success: returns 201 with the new ID", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().
			CreateModifier(gomock.Any(), gomock.Any(), s.adminID).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID.String(), response["id"])
	})

	s.Run("error: 400 on an unknown kind", func() {
		bad := reqBody
		bad.Kind = "rebate"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the modifier fails validation", func() {
		s.mockCommands.EXPECT().
			CreateModifier(gomock.Any(), gomock.Any(), s.adminID).
			Return(uuid.Nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Configuration failed validation")
	})
}

func (s *RateAdminHandlerTestSuite) TestSetModifierActive() {
	modifierID := uuid.New()
	url := "/admin/modifiers/" + modifierID.String()
	active := false
	reqBody := reqdto.SetModifierActiveRequest{Active: &active}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			SetModifierActive(gomock.Any(), modifierID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown modifier", func() {
		s.mockCommands.EXPECT().
			SetModifierActive(gomock.Any(), modifierID, false).
			Return(errs.ErrModifierNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 on a malformed modifier ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/modifiers/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid modifier ID")
	})
}
