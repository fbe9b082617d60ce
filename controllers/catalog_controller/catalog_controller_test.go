package catalog_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RBazelais/BoltBucket/catalog"
	"github.com/RBazelais/BoltBucket/services"
	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(catalog.Default(), services.NewChecker(catalog.DefaultRules()))

	router := gin.New()
	api := router.Group("/api")
	options := api.Group("/options")
	options.GET("", GetOptions)
	options.GET("/:category", GetOptionsByCategory)
	api.POST("/quote", QuoteBuild)
	return router
}

func TestGetOptions(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string][]catalog.Option
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body) != 4 {
		t.Errorf("expected 4 categories, got %d", len(body))
	}
	if len(body["exterior"]) != 10 {
		t.Errorf("expected 10 exterior options, got %d", len(body["exterior"]))
	}
}

func TestGetOptionsByCategory(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		category string
		status   int
	}{
		{"roof", http.StatusOK},
		{"interior", http.StatusOK},
		{"spoilers", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/options/"+tt.category, nil)
		router.ServeHTTP(w, req)
		if w.Code != tt.status {
			t.Errorf("GET /api/options/%s status = %d, want %d", tt.category, w.Code, tt.status)
		}
	}
}

func TestQuoteBuild(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		body       string
		status     int
		total      float64
		compatible bool
	}{
		{
			name:       "full build",
			body:       `{"model":"Sport Coupe","basePrice":50000,"selections":{"exterior":"exterior9","roof":"roof3","wheels":"wheel1","interior":"interior1"}}`,
			status:     http.StatusOK,
			total:      62000, // 50000 + 2000 + 3500 + 3500 + 3000
			compatible: true,
		},
		{
			name:       "base price as string",
			body:       `{"model":"GT Roadster","basePrice":"52000","selections":{"exterior":"exterior10"}}`,
			status:     http.StatusOK,
			total:      53500,
			compatible: true,
		},
		{
			name:       "empty selections fall back to base price",
			body:       `{"model":"Performance","basePrice":51000,"selections":{}}`,
			status:     http.StatusOK,
			total:      51000,
			compatible: true,
		},
		{
			name:   "unknown option id",
			body:   `{"model":"Sport Coupe","basePrice":50000,"selections":{"roof":"roof99"}}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "option id in wrong category",
			body:   `{"model":"Sport Coupe","basePrice":50000,"selections":{"roof":"exterior1"}}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d (body %s)", tt.name, w.Code, tt.status, w.Body.String())
			continue
		}
		if tt.status != http.StatusOK {
			continue
		}

		var resp QuoteResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: invalid JSON: %v", tt.name, err)
			continue
		}
		if resp.Total != tt.total {
			t.Errorf("%s: total = %v, want %v", tt.name, resp.Total, tt.total)
		}
		if resp.Compatible != tt.compatible {
			t.Errorf("%s: compatible = %v, want %v", tt.name, resp.Compatible, tt.compatible)
		}
	}
}
