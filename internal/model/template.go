package model

import "time"

// Template is a report layout owned by an insurance company.
// Content holds inline text with {{token}} markers; FileRef points at a
// packaged .docx either in the object store or at an http(s) URL.
type Template struct {
	ID               int64     `json:"id"`
	InsuranceCompany string    `json:"insurance_company"`
	Name             string    `json:"template_name"`
	Content          string    `json:"template_content,omitempty"`
	FileRef          string    `json:"file_path,omitempty"`
	CreatedBy        int64     `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// HasFile reports whether the template renders through the packaged-document path.
func (t *Template) HasFile() bool { return t.FileRef != "" }
