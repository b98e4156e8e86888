package model

import (
	"time"
)

// Document represents an uploaded W-2 source document and its extraction state
type Document struct {
	ID        string            `json:"id"`
	Filename  string            `json:"filename"`
	Tenant    string            `json:"tenant"`
	PDFURL    string            `json:"pdf_url"`
	Status    string            `json:"status"` // pending, processing, completed, failed
	Result    *ExtractionResult `json:"result,omitempty"`
	ErrorMsg  string            `json:"error_msg,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// DocumentStatus constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
