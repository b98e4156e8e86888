package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariwagen/ma-w2-efw2-generator/service/extract"
	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
	"github.com/ariwagen/ma-w2-efw2-generator/service/service"
	"github.com/gin-gonic/gin"
)

func setupTestStore() *service.DocumentStore {
	return service.GetDocumentStore()
}

func TestDocumentHandlerList(t *testing.T) {
	store := setupTestStore()

	// Add test documents
	store.Save(&model.Document{
		ID:        "test-1",
		Filename:  "w2-2025.pdf",
		Tenant:    "tenant1",
		Status:    model.StatusCompleted,
		CreatedAt: time.Now(),
	})
	store.Save(&model.Document{
		ID:        "test-2",
		Filename:  "w2-batch.pdf",
		Tenant:    "tenant1",
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	})
	store.Save(&model.Document{
		ID:        "test-3",
		Filename:  "other.pdf",
		Tenant:    "tenant2",
		Status:    model.StatusCompleted,
		CreatedAt: time.Now(),
	})

	handler := &DocumentHandler{store: store}

	router := gin.New()
	router.GET("/documents", func(c *gin.Context) {
		c.Set("tenant", "tenant1")
		handler.List(c)
	})

	req := httptest.NewRequest("GET", "/documents", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	documents := response["documents"]
	if len(documents) != 2 {
		t.Errorf("Expected 2 documents for tenant1, got %d", len(documents))
	}

	// Cleanup
	store.Delete("test-1")
	store.Delete("test-2")
	store.Delete("test-3")
}

func TestDocumentHandlerGet(t *testing.T) {
	store := setupTestStore()

	doc := &model.Document{
		ID:       "get-test",
		Filename: "w2.pdf",
		Tenant:   "tenant1",
		Status:   model.StatusCompleted,
		Result: &model.ExtractionResult{
			Method: "pdftext",
			Fields: model.Fields{
				Employees: []model.Employee{{SSN: ssnPtr("123-45-6789")}},
			},
		},
		CreatedAt: time.Now(),
	}
	store.Save(doc)
	defer store.Delete("get-test")

	handler := &DocumentHandler{store: store}

	tests := []struct {
		name           string
		id             string
		tenant         string
		expectedStatus int
	}{
		{
			name:           "valid get",
			id:             "get-test",
			tenant:         "tenant1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong tenant",
			id:             "get-test",
			tenant:         "tenant2",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-existent",
			id:             "missing",
			tenant:         "tenant1",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/documents/:id", func(c *gin.Context) {
				c.Set("tenant", tt.tenant)
				handler.Get(c)
			})

			req := httptest.NewRequest("GET", "/documents/"+tt.id, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var response model.Document
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if response.Result == nil || response.Result.Method != "pdftext" {
					t.Errorf("Expected embedded extraction result, got %+v", response.Result)
				}
			}
		})
	}
}

func TestDocumentHandlerGetStatus(t *testing.T) {
	store := setupTestStore()

	store.Save(&model.Document{
		ID:        "status-test",
		Tenant:    "tenant1",
		Status:    model.StatusFailed,
		ErrorMsg:  "Unable to extract text from the document",
		CreatedAt: time.Now(),
	})
	defer store.Delete("status-test")

	handler := &DocumentHandler{store: store}

	router := gin.New()
	router.GET("/documents/:id/status", func(c *gin.Context) {
		c.Set("tenant", "tenant1")
		handler.GetStatus(c)
	})

	req := httptest.NewRequest("GET", "/documents/status-test/status", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != model.StatusFailed {
		t.Errorf("Expected status failed, got %s", response["status"])
	}
	if response["error_msg"] == "" {
		t.Error("Expected error message in status")
	}
}

func TestDocumentHandlerDelete(t *testing.T) {
	store := setupTestStore()

	store.Save(&model.Document{
		ID:        "delete-test",
		Tenant:    "tenant1",
		Status:    model.StatusCompleted,
		CreatedAt: time.Now(),
	})

	handler := &DocumentHandler{store: store}

	router := gin.New()
	router.DELETE("/documents/:id", func(c *gin.Context) {
		c.Set("tenant", "tenant1")
		handler.Delete(c)
	})

	req := httptest.NewRequest("DELETE", "/documents/delete-test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if store.Get("delete-test") != nil {
		t.Error("Expected document removed from store")
	}
}

// processDocument drives the async status transitions.
func TestDocumentHandlerProcessDocument(t *testing.T) {
	store := setupTestStore()

	t.Run("successful extraction", func(t *testing.T) {
		store.Save(&model.Document{ID: "proc-ok", Tenant: "tenant1", Status: model.StatusPending, CreatedAt: time.Now()})
		defer store.Delete("proc-ok")

		handler := &DocumentHandler{
			store:    store,
			pipeline: &fakeRunner{result: &model.ExtractionResult{Method: "pdftext"}},
		}
		handler.processDocument(store.Get("proc-ok"), []byte("data"))

		doc := store.Get("proc-ok")
		if doc.Status != model.StatusCompleted {
			t.Errorf("Expected completed, got %s", doc.Status)
		}
		if doc.Result == nil {
			t.Error("Expected extraction result attached")
		}
	})

	t.Run("failed extraction", func(t *testing.T) {
		store.Save(&model.Document{ID: "proc-fail", Tenant: "tenant1", Status: model.StatusPending, CreatedAt: time.Now()})
		defer store.Delete("proc-fail")

		handler := &DocumentHandler{
			store:    store,
			pipeline: &fakeRunner{err: extract.ErrNoTextExtracted},
		}
		handler.processDocument(store.Get("proc-fail"), []byte("data"))

		doc := store.Get("proc-fail")
		if doc.Status != model.StatusFailed {
			t.Errorf("Expected failed, got %s", doc.Status)
		}
		if doc.ErrorMsg == "" {
			t.Error("Expected error message recorded")
		}
	})
}
