package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/facturio/invoice-price-alerts/internal/api/handlers"
	"github.com/facturio/invoice-price-alerts/internal/api/handlers/mocks"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func TestConfigHandler_Get(t *testing.T) {
	t.Parallel()

	mp := mocks.NewMockConfigProvider(t)
	mp.EXPECT().Config().Return(domain.DefaultAlertConfig()).Once()

	h := handlers.NewConfigHandler(mp)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Get(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"max_price_increase_percentage":10`)
}

func TestConfigHandler_Update(t *testing.T) {
	t.Parallel()

	validBody := `{
		"max_price_increase_percentage": 12,
		"critical_price_increase_percentage": 30,
		"normal_discount_percentage": 15,
		"anomalous_discount_percentage": 60,
		"enable_price_history": true
	}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockConfigProvider)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid config",
			body: validBody,
			setupMock: func(m *mocks.MockConfigProvider) {
				m.EXPECT().
					SetConfig(mock.Anything, mock.MatchedBy(func(cfg domain.AlertConfig) bool {
						return cfg.MaxPriceIncreasePct == 12 &&
							cfg.CriticalPriceIncreasePct == 30
					})).
					Return(nil).
					Once()
				m.EXPECT().
					Config().
					Return(domain.AlertConfig{
						MaxPriceIncreasePct:      12,
						CriticalPriceIncreasePct: 30,
						NormalDiscountPct:        15,
						AnomalousDiscountPct:     60,
						EnablePriceHistory:       true,
					}).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"max_price_increase_percentage":12`,
		},
		{
			name: "critical threshold must exceed max",
			body: `{
				"max_price_increase_percentage": 30,
				"critical_price_increase_percentage": 20,
				"normal_discount_percentage": 15,
				"anomalous_discount_percentage": 60
			}`,
			setupMock:  func(_ *mocks.MockConfigProvider) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "critical_price_increase_percentage must exceed",
		},
		{
			name: "anomalous discount must exceed normal",
			body: `{
				"max_price_increase_percentage": 10,
				"critical_price_increase_percentage": 25,
				"normal_discount_percentage": 60,
				"anomalous_discount_percentage": 15
			}`,
			setupMock:  func(_ *mocks.MockConfigProvider) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "anomalous_discount_percentage must exceed",
		},
		{
			name:       "non-positive max increase",
			body:       `{"max_price_increase_percentage": 0}`,
			setupMock:  func(_ *mocks.MockConfigProvider) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "max_price_increase_percentage must be positive",
		},
		{
			name:       "invalid JSON",
			body:       `{invalid}`,
			setupMock:  func(_ *mocks.MockConfigProvider) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name: "store error",
			body: validBody,
			setupMock: func(m *mocks.MockConfigProvider) {
				m.EXPECT().
					SetConfig(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "saving config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mp := mocks.NewMockConfigProvider(t)
			tt.setupMock(mp)
			h := handlers.NewConfigHandler(mp)

			e := echo.New()
			req := jsonRequest(http.MethodPut, "/api/v1/config", tt.body)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Update(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestConfigHandler_Reload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockConfigProvider)
		wantStatus int
		wantBody   string
	}{
		{
			name: "reloads",
			setupMock: func(m *mocks.MockConfigProvider) {
				m.EXPECT().Reload(mock.Anything).Return(nil).Once()
				m.EXPECT().Config().Return(domain.DefaultAlertConfig()).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"critical_price_increase_percentage":25`,
		},
		{
			name: "reload failure",
			setupMock: func(m *mocks.MockConfigProvider) {
				m.EXPECT().Reload(mock.Anything).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "reloading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mp := mocks.NewMockConfigProvider(t)
			tt.setupMock(mp)
			h := handlers.NewConfigHandler(mp)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/config/reload", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Reload(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
