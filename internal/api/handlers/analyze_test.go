package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/facturio/invoice-price-alerts/internal/api/handlers"
	"github.com/facturio/invoice-price-alerts/internal/api/handlers/mocks"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAnalyzeDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockDocumentAnalyzer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "analyzes items",
			body: `{
				"document_info": {
					"document_number": "FAC-2025-001",
					"supplier_name": "Suministros Norte SL"
				},
				"items": [
					{"description": "Tornillo autorroscante 4x40", "unit_price": 12.5}
				]
			}`,
			setupMock: func(m *mocks.MockDocumentAnalyzer) {
				m.EXPECT().
					AnalyzeDocument(mock.Anything,
						domain.DocumentInfo{
							DocumentNumber: "FAC-2025-001",
							SupplierName:   "Suministros Norte SL",
						},
						mock.MatchedBy(func(items []domain.LineItem) bool {
							return len(items) == 1 &&
								items[0].Description == "Tornillo autorroscante 4x40"
						})).
					Return(&domain.BatchResult{
						DocumentInfo: domain.DocumentInfo{DocumentNumber: "FAC-2025-001"},
						Analyses:     []domain.ItemAnalysis{{Index: 0, NewPrice: 12.5}},
						AlertCounts:  domain.AlertCounts{Total: 1, High: 1},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"FAC-2025-001"`,
		},
		{
			name:       "empty items rejected",
			body:       `{"document_info": {"document_number": "FAC-1"}, "items": []}`,
			setupMock:  func(_ *mocks.MockDocumentAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "items is required",
		},
		{
			name:       "invalid JSON",
			body:       `{invalid}`,
			setupMock:  func(_ *mocks.MockDocumentAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name: "analyzer error",
			body: `{"items": [{"description": "x"}]}`,
			setupMock: func(m *mocks.MockDocumentAnalyzer) {
				m.EXPECT().
					AnalyzeDocument(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("context canceled")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "analyzing document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ma := mocks.NewMockDocumentAnalyzer(t)
			tt.setupMock(ma)
			h := handlers.NewAnalyzeHandler(ma)

			e := echo.New()
			req := jsonRequest(http.MethodPost, "/api/v1/analyze", tt.body)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.AnalyzeDocument(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAnalyzeItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockDocumentAnalyzer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "analyzes single item",
			body: `{
				"document_info": {"supplier_name": "Ferreteria Sur"},
				"item": {"sku": "TRN-440", "unit_price": 9.9}
			}`,
			setupMock: func(m *mocks.MockDocumentAnalyzer) {
				m.EXPECT().
					AnalyzeItem(mock.Anything,
						domain.DocumentInfo{SupplierName: "Ferreteria Sur"},
						mock.MatchedBy(func(item domain.LineItem) bool {
							return item.SKU == "TRN-440"
						})).
					Return(&domain.ItemAnalysis{
						NewPrice:  9.9,
						AlertType: domain.AlertNormal,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"normal"`,
		},
		{
			name: "analyzer error",
			body: `{"item": {"sku": "TRN-440"}}`,
			setupMock: func(m *mocks.MockDocumentAnalyzer) {
				m.EXPECT().
					AnalyzeItem(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("context canceled")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "analyzing item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ma := mocks.NewMockDocumentAnalyzer(t)
			tt.setupMock(ma)
			h := handlers.NewAnalyzeHandler(ma)

			e := echo.New()
			req := jsonRequest(http.MethodPost, "/api/v1/analyze/item", tt.body)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.AnalyzeItem(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
