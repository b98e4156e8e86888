package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/ariwagen/ma-w2-efw2-generator/service/extract"
	"github.com/ariwagen/ma-w2-efw2-generator/service/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ExtractHandler serves one-shot synchronous extraction: PDF in,
// structured fields out.
type ExtractHandler struct {
	pipeline extract.Runner
}

func NewExtractHandler(pipeline extract.Runner) *ExtractHandler {
	return &ExtractHandler{pipeline: pipeline}
}

// Extract accepts a multipart W-2 PDF and responds with the extracted
// employer and employee fields. Missing fields come back null; the only
// hard failure is a document no backend could read, which maps to 422.
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	result, err := h.pipeline.Run(data)
	if err != nil {
		if errors.Is(err, extract.ErrNoTextExtracted) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unable to extract text from the document. No PDF text backend produced content.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction failed: " + err.Error()})
		return
	}

	logger.Info(c.Request.Context(), "document extracted",
		"filename", header.Filename,
		"method", result.Method,
		"employees", len(result.Fields.Employees),
	)

	c.JSON(http.StatusOK, result)
}
