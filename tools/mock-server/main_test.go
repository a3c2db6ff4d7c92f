package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestStore(t *testing.T) *store {
	t.Helper()
	st, err := loadFixture(filepath.Join("testdata", "products.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return st
}

func TestLoadFixture(t *testing.T) {
	st := loadTestStore(t)
	if len(st.products) == 0 {
		t.Fatal("expected products in fixture")
	}
	for _, p := range st.products {
		if p.ID == "" || p.Name == "" || p.SKU == "" {
			t.Errorf("product %+v missing id, name, or sku", p)
		}
	}
}

func TestRequireBearer(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := requireBearer("secret-key", next)

	req := httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d for missing auth", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong-key")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d for wrong key", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-key")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d for valid key", w.Code, http.StatusOK)
	}
}

func TestListHandler(t *testing.T) {
	st := loadTestStore(t)
	handler := listHandler(testLogger(), st)
	req := httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp productList
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != len(st.products) {
		t.Errorf("total=%d, want %d", resp.Total, len(st.products))
	}
	if len(resp.Products) != len(st.products) {
		t.Errorf("products=%d, want %d", len(resp.Products), len(st.products))
	}
}

func TestSearchHandler_QueryFilter(t *testing.T) {
	st := loadTestStore(t)
	handler := searchHandler(testLogger(), st)
	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=tornillo", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp productList
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total == 0 {
		t.Fatal("expected tornillo results")
	}
	if resp.Total >= len(st.products) {
		t.Error("expected filter to reduce results")
	}
	for _, p := range resp.Products {
		if !strings.Contains(strings.ToLower(p.Name), "tornillo") {
			t.Errorf("product %q does not match query", p.Name)
		}
	}
}

func TestSearchHandler_MultiWordQuery(t *testing.T) {
	st := loadTestStore(t)
	handler := searchHandler(testLogger(), st)
	// Both words must appear, so only the 4x40 variant matches.
	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=tornillo+4x40", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp productList
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total=%d, want 1", resp.Total)
	}
}

func TestSearchHandler_Limit(t *testing.T) {
	st := loadTestStore(t)
	handler := searchHandler(testLogger(), st)
	req := httptest.NewRequest(http.MethodGet, "/api/products/search?limit=3", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp productList
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Products) != 3 {
		t.Errorf("products=%d, want 3", len(resp.Products))
	}
	if resp.Total != len(st.products) {
		t.Errorf("total=%d, want %d", resp.Total, len(st.products))
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	st := loadTestStore(t)
	handler := searchHandler(testLogger(), st)
	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=nonexistent_xyz_product", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp productList
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("total=%d, want 0", resp.Total)
	}
	if resp.Products == nil {
		t.Error("expected empty array, got nil")
	}
}

func TestGetHandler(t *testing.T) {
	st := loadTestStore(t)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{id}", getHandler(testLogger(), st))

	req := httptest.NewRequest(http.MethodGet, "/api/products/cat-001", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var p product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if p.ID != "cat-001" {
		t.Errorf("id=%s, want cat-001", p.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/cat-999", http.NoBody)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d for unknown id", w.Code, http.StatusNotFound)
	}
}

func TestUpdateHandler(t *testing.T) {
	st := loadTestStore(t)
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/products/{id}", updateHandler(testLogger(), st))
	mux.HandleFunc("GET /api/products/{id}", getHandler(testLogger(), st))

	body := strings.NewReader(`{"price": 12.75}`)
	req := httptest.NewRequest(http.MethodPut, "/api/products/cat-001", body)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNoContent)
	}

	// The update must be visible to subsequent reads.
	req = httptest.NewRequest(http.MethodGet, "/api/products/cat-001", http.NoBody)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var p product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if p.Price != 12.75 {
		t.Errorf("price=%v, want 12.75", p.Price)
	}
	if p.Name != "Tornillo autorroscante 4x40" {
		t.Errorf("name changed unexpectedly: %s", p.Name)
	}
}

func TestUpdateHandler_BadPayload(t *testing.T) {
	st := loadTestStore(t)
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/products/{id}", updateHandler(testLogger(), st))

	req := httptest.NewRequest(http.MethodPut, "/api/products/cat-001", strings.NewReader("{{{"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
