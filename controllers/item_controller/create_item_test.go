package item_controller

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

// The shape and compatibility gates run before anything touches the store, so
// their rejections are testable without a database.
func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(services.NewChecker(catalog.DefaultRules()))

	router := gin.New()
	router.POST("/api/items", CreateItem)
	return router
}

func TestCreateItemRejectsBadShapes(t *testing.T) {
	router := newGateRouter()

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"empty payload", `{}`, "Name is required"},
		{"missing price", `{"name":"My Build"}`, "Price is required and must be a number"},
		{"non-numeric price", `{"name":"My Build","price":"abc"}`, "Price is required and must be a number"},
		{"missing category_images", `{"name":"My Build","price":50000}`, "category_images is required"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, w.Code)
			continue
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Errorf("%s: invalid JSON: %v", tt.name, err)
			continue
		}
		if body["error"] != tt.wantError {
			t.Errorf("%s: error = %q, want %q", tt.name, body["error"], tt.wantError)
		}
	}
}

func TestCreateItemRejectsIncompatibleBuild(t *testing.T) {
	router := newGateRouter()

	body := `{
		"name": "See-Through Convertible",
		"model": "Convertible",
		"price": 60000,
		"category_images": {"roof": [{"id": "transparent_roof", "label": "Transparent Roof", "price": 5000}]}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "not compatible") {
		t.Errorf("expected a compatibility error, got %s", w.Body.String())
	}
}
