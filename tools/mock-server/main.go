// Package main implements a mock ERP catalog API server for local development.
// It serves a product catalog from a JSON fixture so the analysis engine can be
// exercised against catalog matching without real ERP credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type product struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	SKU   string   `json:"sku"`
	Price float64  `json:"price"`
	Cost  *float64 `json:"cost"`
}

type productList struct {
	Products []product `json:"products"`
	Total    int       `json:"total"`
}

type productUpdate struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Cost  *float64 `json:"cost"`
}

// store holds the fixture products in memory so PUT updates are visible to
// subsequent reads within the same run.
type store struct {
	mu       sync.RWMutex
	products []product
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to product fixture")
	apiKey := flag.String("api-key", "mock-api-key", "Bearer token clients must present")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(st.products))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", listHandler(logger, st))
	mux.HandleFunc("GET /api/products/search", searchHandler(logger, st))
	mux.HandleFunc("GET /api/products/{id}", getHandler(logger, st))
	mux.HandleFunc("PUT /api/products/{id}", updateHandler(logger, st))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, requireBearer(*apiKey, mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var list productList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &store{products: list.Products}, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// requireBearer rejects requests whose Authorization header does not carry
// the expected Bearer token, matching the real catalog API's auth scheme.
func requireBearer(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid or missing API key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func listHandler(logger *slog.Logger, st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st.mu.RLock()
		products := make([]product, len(st.products))
		copy(products, st.products)
		st.mu.RUnlock()

		writeJSON(w, productList{Products: products, Total: len(products)})
		logger.Info("list", "products", len(products))
	}
}

func searchHandler(logger *slog.Logger, st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		limit := 50
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = v
		}

		st.mu.RLock()
		matched := make([]product, 0)
		for _, p := range st.products {
			if q == "" || matchesQuery(p, q) {
				matched = append(matched, p)
			}
		}
		st.mu.RUnlock()

		total := len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}

		writeJSON(w, productList{Products: matched, Total: total})
		logger.Info("search", "query", q, "matched", total, "returned", len(matched))
	}
}

// matchesQuery reports whether every word of the query appears in the
// product name or SKU.
func matchesQuery(p product, q string) bool {
	haystack := strings.ToLower(p.Name + " " + p.SKU)
	for _, word := range strings.Fields(q) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}

func getHandler(logger *slog.Logger, st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		st.mu.RLock()
		defer st.mu.RUnlock()
		for _, p := range st.products {
			if p.ID == id {
				writeJSON(w, p)
				logger.Info("get", "id", id)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
		logger.Warn("get: not found", "id", id)
	}
}

func updateHandler(logger *slog.Logger, st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var update productUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid update payload"})
			return
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.products {
			if st.products[i].ID != id {
				continue
			}
			if update.Name != nil {
				st.products[i].Name = *update.Name
			}
			if update.Price != nil {
				st.products[i].Price = *update.Price
			}
			if update.Cost != nil {
				st.products[i].Cost = update.Cost
			}
			w.WriteHeader(http.StatusNoContent)
			logger.Info("update", "id", id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
		logger.Warn("update: not found", "id", id)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
