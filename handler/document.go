package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariwagen/ma-w2-efw2-generator/service/extract"
	"github.com/ariwagen/ma-w2-efw2-generator/service/middleware"
	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
	"github.com/ariwagen/ma-w2-efw2-generator/service/pkg/logger"
	"github.com/ariwagen/ma-w2-efw2-generator/service/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	archive  *service.ArchiveService
	pipeline extract.Runner
	store    *service.DocumentStore
}

func NewDocumentHandler(archive *service.ArchiveService, pipeline extract.Runner) *DocumentHandler {
	return &DocumentHandler{
		archive:  archive,
		pipeline: pipeline,
		store:    service.GetDocumentStore(),
	}
}

// Upload handles W-2 document upload: the PDF is archived for later human
// verification, then extracted asynchronously.
func (h *DocumentHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	// Get file from form
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	// Validate file type - only PDF is supported
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	// Validate content type, sniffing the bytes when the client sent
	// something generic
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = "application/pdf"
	} else if !strings.Contains(contentType, "pdf") {
		detectedType := http.DetectContentType(data)
		if !strings.Contains(detectedType, "pdf") && detectedType != "application/octet-stream" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
			return
		}
		contentType = "application/pdf"
	}

	// Generate unique ID and object name
	documentID := uuid.New().String()
	objectName := fmt.Sprintf("%s/%s/%s", tenant, documentID, header.Filename)

	// Archive to MINIO
	err = h.archive.UploadDocument(c.Request.Context(), objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive file: " + err.Error()})
		return
	}

	// Get presigned URL for the verification UI
	pdfURL, err := h.archive.GetPresignedURL(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}

	// Create document record
	doc := &model.Document{
		ID:        documentID,
		Filename:  header.Filename,
		Tenant:    tenant,
		PDFURL:    pdfURL,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	h.store.Save(doc)

	// Run extraction in the background
	go h.processDocument(doc, data)

	c.JSON(http.StatusOK, gin.H{
		"id":       documentID,
		"filename": header.Filename,
		"pdf_url":  pdfURL,
		"status":   model.StatusPending,
	})
}

// processDocument runs the extraction pipeline for an uploaded document
func (h *DocumentHandler) processDocument(doc *model.Document, data []byte) {
	ctx := context.Background()
	h.store.UpdateStatus(doc.ID, model.StatusProcessing, "")

	result, err := h.pipeline.Run(data)
	if err != nil {
		msg := "Extraction failed: " + err.Error()
		if errors.Is(err, extract.ErrNoTextExtracted) {
			msg = "Unable to extract text from the document"
		}
		logger.Warn(ctx, "document extraction failed",
			"document_id", doc.ID,
			"error", err,
		)
		h.store.UpdateStatus(doc.ID, model.StatusFailed, msg)
		return
	}

	logger.Info(ctx, "document extraction completed",
		"document_id", doc.ID,
		"method", result.Method,
		"employees", len(result.Fields.Employees),
	)
	h.store.UpdateResult(doc.ID, result)
}

// List returns all documents for the current tenant
func (h *DocumentHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	documents := h.store.GetByTenant(tenant)

	// Return without extraction results for list view
	result := make([]gin.H, len(documents))
	for i, doc := range documents {
		result[i] = gin.H{
			"id":         doc.ID,
			"filename":   doc.Filename,
			"status":     doc.Status,
			"pdf_url":    doc.PDFURL,
			"created_at": doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at": doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"documents": result})
}

// Get returns a single document with its extraction result
func (h *DocumentHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetStatus returns the processing status of a document
func (h *DocumentHandler) GetStatus(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        doc.ID,
		"status":    doc.Status,
		"error_msg": doc.ErrorMsg,
	})
}

// Delete deletes a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
