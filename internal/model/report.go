package model

import "time"

// GeneratedReport is the persisted record of one successful render and upload.
// It is never updated after creation.
type GeneratedReport struct {
	ID             int64     `json:"id"`
	CaseID         int64     `json:"case_id"`
	TemplateID     int64     `json:"template_id"`
	FileRef        string    `json:"file_path"`
	ContentType    string    `json:"content_type"`
	Size           int64     `json:"size"`
	GeneratedBy    int64     `json:"generated_by"`
	Conclusion     string    `json:"conclusion"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}
