package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/report"
	"claimdesk/internal/repository"
)

// TemplateInput describes a new template. At least one of Content, File or
// FileURL must be set; File and FileURL are mutually exclusive.
type TemplateInput struct {
	InsuranceCompany string
	Name             string
	Content          string
	File             *UploadFile
	// FileURL is an http(s) link to a .docx, such as a shared Google Drive file.
	FileURL string
}

// TemplateService defines the use cases for report templates.
type TemplateService interface {
	Create(ctx context.Context, p authz.Principal, in TemplateInput) (*model.Template, error)
	Get(ctx context.Context, id int64) (*model.Template, error)
	ListByCompany(ctx context.Context, company string) ([]model.Template, error)
	Delete(ctx context.Context, id int64) error
}

// TemplateOptions configures template validation.
type TemplateOptions struct {
	// Strict rejects uploaded packages whose placeholders name unknown tokens.
	// Otherwise they are accepted and logged.
	Strict bool
	Logger zerolog.Logger
}

type templateService struct {
	templates repository.TemplateRepository
	objects   ObjectStore
	strict    bool
	log       zerolog.Logger
}

// NewTemplateService constructs a new TemplateService.
func NewTemplateService(templates repository.TemplateRepository, objects ObjectStore, opts TemplateOptions) TemplateService {
	return &templateService{
		templates: templates,
		objects:   objects,
		strict:    opts.Strict,
		log:       opts.Logger.With().Str("component", "templates").Logger(),
	}
}

func (s *templateService) Create(ctx context.Context, p authz.Principal, in TemplateInput) (*model.Template, error) {
	in.InsuranceCompany = strings.TrimSpace(in.InsuranceCompany)
	in.Name = strings.TrimSpace(in.Name)
	in.FileURL = strings.TrimSpace(in.FileURL)
	if in.InsuranceCompany == "" || in.Name == "" {
		return nil, invalid("insurance_company and template_name are required")
	}
	if in.File != nil && in.FileURL != "" {
		return nil, invalid("provide either a file or a file URL, not both")
	}
	if in.File == nil && in.FileURL == "" && strings.TrimSpace(in.Content) == "" {
		return nil, invalid("template content or a .docx file is required")
	}

	t := &model.Template{
		InsuranceCompany: in.InsuranceCompany,
		Name:             in.Name,
		Content:          in.Content,
		CreatedBy:        p.UserID,
	}

	switch {
	case in.File != nil:
		if err := report.CheckExtension(in.File.Name); err != nil || !report.IsPackage(in.File.Data) {
			return nil, invalid("%s is not a .docx file", in.File.Name)
		}
		if err := s.checkPlaceholders(in.File); err != nil {
			return nil, err
		}
		obj, err := s.objects.Upload(ctx, in.File.Data, in.File.Name, report.DocxContentType, "templates", in.InsuranceCompany)
		if err != nil {
			return nil, fmt.Errorf("upload template: %w", err)
		}
		t.FileRef = obj.Key
	case in.FileURL != "":
		if !report.IsRemote(in.FileURL) {
			return nil, invalid("file URL must start with http:// or https://")
		}
		if err := report.CheckExtension(in.FileURL); err != nil {
			return nil, invalid("file URL must point to a .docx file")
		}
		t.FileRef = in.FileURL
	}

	if err := s.templates.Create(ctx, t); err != nil {
		if t.FileRef != "" && !report.IsRemote(t.FileRef) {
			s.objects.Delete(context.WithoutCancel(ctx), t.FileRef)
		}
		return nil, fmt.Errorf("create template: %w", err)
	}
	return t, nil
}

// checkPlaceholders reads the package once so a broken upload is rejected now
// rather than at the first report generation.
func (s *templateService) checkPlaceholders(f *UploadFile) error {
	names, err := report.Placeholders(f.Data)
	if err != nil {
		return invalid("%s is not a readable .docx package", f.Name)
	}
	unknown := report.UnknownTokens(names)
	if len(unknown) == 0 {
		return nil
	}
	if s.strict {
		return invalid("%s uses unknown tokens: %s", f.Name, strings.Join(unknown, ", "))
	}
	s.log.Warn().Str("event", "template_unknown_tokens").Str("file", f.Name).Strs("tokens", unknown).Msg("unknown tokens will render empty")
	return nil
}

func (s *templateService) Get(ctx context.Context, id int64) (*model.Template, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "template", id)
	}
	return t, nil
}

func (s *templateService) ListByCompany(ctx context.Context, company string) ([]model.Template, error) {
	return s.templates.ListByCompany(ctx, strings.TrimSpace(company))
}

// Delete removes the stored file on a best-effort basis, then the record.
// Remote links are left alone.
func (s *templateService) Delete(ctx context.Context, id int64) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.FileRef != "" && !report.IsRemote(t.FileRef) {
		s.objects.Delete(ctx, t.FileRef)
	}
	return s.templates.Delete(ctx, id)
}
