//go:build e2e

package rates_test

import (
	"net/http"
	"testing"
	"time"

	"tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/tests/common/authtest"
	"tour-booking-api/tests/common/builder"
	"tour-booking-api/tests/common/httptest"
	"tour-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rateConfigURL  = "/api/admin/rates/wine_tours"
	rateChangesURL = "/api/admin/rates/wine_tours/changes"
	modifiersURL   = "/api/admin/modifiers"
	quoteURL       = "/api/pricing/quote"
)

type RatesSuite struct {
	e2e.SharedSuite
}

func TestRatesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RatesSuite))
}

func (s *RatesSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func futureWeekend() string {
	d := time.Now().UTC().AddDate(0, 0, 30)
	for d.Weekday() != time.Saturday || d.Format("2006-01-02") == "2026-12-25" {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func (s *RatesSuite) TestRateConfigAdministration() {
	s.Run("Normal case: an update is applied and recorded in the change log", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, rateConfigURL, nil, adminToken)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var before response.RateConfigResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &before)
		require.Equal(t, "wine_tours", before.Key)

		updateReq := request.UpdateRateConfigRequest{
			Value:  builder.NewRateCardBuilder().BuildJSON(),
			Reason: "seasonal rate increase",
		}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, rateConfigURL, updateReq, adminToken)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var after response.RateConfigResponse
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &after)
		require.NotEqual(t, string(before.Value), string(after.Value))

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, rateChangesURL, nil, adminToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var changes []*response.RateConfigChangeResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &changes)
		require.Len(t, changes, 1)
		require.Equal(t, "seasonal rate increase", changes[0].Reason)
		require.JSONEq(t, string(before.Value), string(changes[0].OldValue))
	})

	s.Run("Error case: a card that fails validation is never stored", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		updateReq := request.UpdateRateConfigRequest{
			Value:  builder.NewRateCardBuilder().WithTaxRateBps(20000).BuildJSON(),
			Reason: "bad update",
		}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, rateConfigURL, updateReq, adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, uw.Code, uw.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, rateChangesURL, nil, adminToken)
		var changes []*response.RateConfigChangeResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &changes)
		require.Empty(t, changes)
	})

	s.Run("Authorization: only admins may manage rates", func() {
		t := s.T()

		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", "operator")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rateConfigURL, nil, operatorToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rateConfigURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *RatesSuite) TestModifierLifecycle() {
	s.Run("Normal case: an active discount changes quotes until deactivated", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")

		quoteReq := builder.NewBookingBuilder().BuildQuoteRequestDTO()
		quoteReq.Date = futureWeekend()

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, quoteReq, customerToken)
		require.Equal(t, http.StatusOK, qw.Code, qw.Body.String())

		var baseline response.QuoteResponse
		httptest.AssertSuccessResponse(t, qw, http.StatusOK, &baseline)
		require.Equal(t, int64(72000), baseline.SubtotalCents)
		require.Equal(t, int64(78300), baseline.TotalCents)

		percentBps := int64(1000)
		createReq := request.CreateModifierRequest{
			Name:       "late summer promotion",
			Kind:       "discount",
			PercentBps: &percentBps,
			Active:     true,
		}
		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, modifiersURL, createReq, adminToken)
		require.Equal(t, http.StatusCreated, mw.Code, mw.Body.String())

		var created map[string]string
		httptest.AssertSuccessResponse(t, mw, http.StatusCreated, &created)
		modifierID := created["id"]
		require.NotEmpty(t, modifierID)

		qw = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, quoteReq, customerToken)
		var discounted response.QuoteResponse
		httptest.AssertSuccessResponse(t, qw, http.StatusOK, &discounted)
		require.Equal(t, int64(-7200), discounted.ModifierAdjustCents)
		require.Equal(t, int64(70470), discounted.TotalCents)
		require.Len(t, discounted.AppliedModifiers, 1)
		require.Equal(t, "late summer promotion", discounted.AppliedModifiers[0].Name)

		active := false
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, modifiersURL+"/"+modifierID,
			request.SetModifierActiveRequest{Active: &active}, adminToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		qw = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, quoteReq, customerToken)
		var restored response.QuoteResponse
		httptest.AssertSuccessResponse(t, qw, http.StatusOK, &restored)
		require.Equal(t, int64(0), restored.ModifierAdjustCents)
		require.Equal(t, baseline.TotalCents, restored.TotalCents)
	})

	s.Run("Error case: a modifier needs exactly one of percent and flat amount", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		createReq := request.CreateModifierRequest{
			Name:   "broken promotion",
			Kind:   "discount",
			Active: true,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, modifiersURL, createReq, adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}
