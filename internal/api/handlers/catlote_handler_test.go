package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/pricingdesk/pricing-console/internal/engine/catlote"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRunner struct {
	out string
	err error
}

func (s *stubRunner) SubmitAndWait(context.Context, string, map[string]string) (string, error) {
	return s.out, s.err
}

func catloteRouter(runner service.Runner) *gin.Engine {
	h := NewCatloteHandler(service.NewCatloteService(nil), service.NewApprovalService(runner))
	r := gin.New()
	r.POST("/catlote/simulate", h.Simulate)
	r.POST("/catlote/approval", h.SubmitApproval)
	return r
}

func TestCatloteSimulateEndpoint(t *testing.T) {
	body := map[string]any{
		"configs": []domain.DiscountConfig{{
			CatloteID: "CAT-01",
			D:         [4]float64{0.1, 0.1, 0.1, 0.1},
			E:         [4]float64{0.25, 0.25, 0.25, 0.25},
			P:         [4]float64{0.25, 0.25, 0.25, 0.25},
		}},
		"rows": []domain.CatalogRow{{
			PartID:               "P-1",
			CatloteID:            "CAT-01",
			CurrentListPrice:     100,
			TaxMultiplier:        1.1,
			NetTaxFactor:         0.9,
			RegularAverageVolume: 10,
			PromoAverageVolume:   10,
		}},
		"patch": domain.Patch{
			RowIndex: 0,
			Field:    domain.FieldCurrentListPrice,
			OldValue: 100,
			NewValue: 110,
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catlote/simulate", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	catloteRouter(&stubRunner{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result catlote.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 121.0, result.Rows[0].PriceWithTax)
	assert.True(t, result.Rows[0].NewAlteration)
}

func TestCatloteSimulateEndpointBadPayload(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catlote/simulate", strings.NewReader(`{"rows": []}`))
	req.Header.Set("Content-Type", "application/json")
	catloteRouter(&stubRunner{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatloteApprovalEndpoint(t *testing.T) {
	body := map[string]any{
		"user_token": "tok",
		"rows":       []domain.CatalogRow{{PartID: "P-1", NewAlteration: true}},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catlote/approval", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	catloteRouter(&stubRunner{out: "change-9"}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"output":"change-9"}`, w.Body.String())
}

func TestCatloteApprovalEndpointNothingChanged(t *testing.T) {
	body := map[string]any{
		"user_token": "tok",
		"rows":       []domain.CatalogRow{{PartID: "P-1"}},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catlote/approval", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	catloteRouter(&stubRunner{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
