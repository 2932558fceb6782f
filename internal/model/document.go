package model

import "time"

// CaseDocument is a file uploaded as evidence for a case.
// It has no database-specific dependencies.
type CaseDocument struct {
	ID           int64     `json:"id"`
	CaseID       int64     `json:"case_id"`
	DocumentType string    `json:"document_type"`
	Source       string    `json:"doc_source"`
	FileName     string    `json:"file_name"`
	FileRef      string    `json:"file_path"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	UploadedBy   int64     `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}
