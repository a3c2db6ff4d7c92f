package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/facturio/invoice-price-alerts/internal/api/handlers"
	storeMocks "github.com/facturio/invoice-price-alerts/internal/store/mocks"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func TestProductHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "returns products",
			target: "/api/v1/products?q=tornillo",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "tornillo", 20).
					Return([]domain.ProductRecord{
						{ID: "p1", Name: "Tornillo autorroscante 4x40"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Tornillo autorroscante 4x40"`,
		},
		{
			name:   "custom limit",
			target: "/api/v1/products?q=tuerca&limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "tuerca", 5).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "missing query",
			target:     "/api/v1/products",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "q query parameter is required",
		},
		{
			name:   "store error",
			target: "/api/v1/products?q=tornillo",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "tornillo", 20).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "searching products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Search(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "p1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "p1").
					Return(&domain.ProductRecord{ID: "p1", Name: "Tuerca M8", Price: 0.15}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Tuerca M8"`,
		},
		{
			name: "not found",
			id:   "p-missing",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "p-missing").
					Return(nil, pgx.ErrNoRows).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "product not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tt.id, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.Get(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProductHandler_History(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "returns history",
			target: "/api/v1/products/p1/history",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPriceHistory(mock.Anything, "p1", 50).
					Return([]domain.PriceHistory{
						{ProductID: "p1", Price: 12.5, SupplierName: "Suministros Norte SL"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Suministros Norte SL"`,
		},
		{
			name:   "empty history",
			target: "/api/v1/products/p1/history?limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPriceHistory(mock.Anything, "p1", 5).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "store error",
			target: "/api/v1/products/p1/history",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPriceHistory(mock.Anything, "p1", 50).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching price history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("p1")

			err := h.History(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
