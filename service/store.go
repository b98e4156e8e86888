package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ariwagen/ma-w2-efw2-generator/service/config"
	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
)

// DocumentStore is an in-memory store for uploaded documents and their
// extraction results. Results are transient review artifacts, not records
// of truth, so nothing here needs to survive a restart.
type DocumentStore struct {
	documents    map[string]*model.Document
	mu           sync.RWMutex
	maxDocuments int // Maximum documents to keep, 0 = unlimited
}

var (
	globalStore *DocumentStore
	storeOnce   sync.Once
)

// InitDocumentStore initializes the global document store with configuration
func InitDocumentStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxDocuments := cfg.MaxDocuments
		if maxDocuments < 0 {
			maxDocuments = 0
		}
		globalStore = &DocumentStore{
			documents:    make(map[string]*model.Document),
			maxDocuments: maxDocuments,
		}
		slog.Info("document store initialized", "max_documents", maxDocuments)
	})
}

// GetDocumentStore returns the global document store
func GetDocumentStore() *DocumentStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &DocumentStore{
			documents:    make(map[string]*model.Document),
			maxDocuments: 100, // Default: keep 100 documents
		}
	}
	return globalStore
}

func (s *DocumentStore) Save(doc *model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now()
	s.documents[doc.ID] = doc

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *DocumentStore) Get(id string) *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[id]
}

func (s *DocumentStore) GetByTenant(tenant string) []*model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Document
	for _, d := range s.documents {
		if d.Tenant == tenant {
			result = append(result, d)
		}
	}
	return result
}

func (s *DocumentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}

func (s *DocumentStore) UpdateStatus(id, status string, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.documents[id]; ok {
		d.Status = status
		d.ErrorMsg = errMsg
		d.UpdatedAt = time.Now()
	}
}

// UpdateResult attaches an extraction result and marks the document completed
func (s *DocumentStore) UpdateResult(id string, result *model.ExtractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.documents[id]; ok {
		d.Result = result
		d.Status = model.StatusCompleted
		d.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest documents if store exceeds maxDocuments
// Must be called with lock held
func (s *DocumentStore) cleanupIfNeeded() {
	if s.maxDocuments <= 0 {
		return // Unlimited
	}

	if len(s.documents) <= s.maxDocuments {
		return
	}

	// Sort documents by creation time
	documents := make([]*model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		documents = append(documents, d)
	}
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].CreatedAt.Before(documents[j].CreatedAt)
	})

	// Remove oldest documents
	removeCount := len(documents) - s.maxDocuments
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old document",
			"document_id", documents[i].ID,
			"created_at", documents[i].CreatedAt,
		)
		delete(s.documents, documents[i].ID)
	}
}

// Count returns the number of documents in the store
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
