package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"claimdesk/internal/authz"
	"claimdesk/internal/metrics"
	"claimdesk/internal/model"
	"claimdesk/internal/report"
	"claimdesk/internal/repository"
	"claimdesk/internal/storage"
)

var tracer = otel.Tracer("claimdesk/internal/service")

// Stage is a step of report generation.
type Stage string

const (
	StageCollecting Stage = "collecting-input"
	StageRendering  Stage = "rendering"
	StageUploading  Stage = "uploading"
	StagePersisted  Stage = "persisted"
)

// GenerationError reports the stage a generation failed in and why.
type GenerationError struct {
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("report generation failed while %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Cause is a user-facing explanation of the failure.
func (e *GenerationError) Cause() string {
	var re *report.RenderError
	switch {
	case errors.Is(e.Err, ErrInvalidInput), errors.Is(e.Err, ErrNotFound):
		return e.Err.Error()
	case errors.Is(e.Err, report.ErrUnresolvedToken) && errors.As(e.Err, &re):
		return "template uses unknown tokens: " + strings.Join(re.Tokens, ", ")
	case errors.Is(e.Err, report.ErrUnsupportedFormat):
		return "template must be a .docx file"
	case errors.Is(e.Err, report.ErrMalformedPackage):
		return "template file is corrupted or is not a valid .docx document"
	case errors.Is(e.Err, report.ErrTemplateFetch):
		return "could not download the template file; check that the link is public and reachable"
	case errors.Is(e.Err, storage.ErrUnavailable):
		return "file storage is unavailable; ask an administrator to check the storage configuration"
	}
	return "report could not be generated"
}

// GenerateInput carries the caller's choices for one report.
type GenerateInput struct {
	TemplateID     int64  `json:"template_id"`
	Conclusion     string `json:"conclusion"`
	Recommendation string `json:"recommendation"`
}

func (in GenerateInput) validate() error {
	if in.TemplateID <= 0 {
		return invalid("template_id is required")
	}
	if strings.TrimSpace(in.Conclusion) == "" {
		return invalid("conclusion is required")
	}
	if strings.TrimSpace(in.Recommendation) == "" {
		return invalid("recommendation is required")
	}
	return nil
}

// TemplateSource loads packaged template bytes by file reference.
type TemplateSource interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// ReportService defines report generation and report record use cases.
type ReportService interface {
	// Generate renders a template for a case, uploads the result and records it.
	// Failures are returned as *GenerationError and leave no record behind.
	Generate(ctx context.Context, p authz.Principal, caseID int64, in GenerateInput) (*model.GeneratedReport, error)
	ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.GeneratedReport, error)
	// DownloadURL returns a signed attachment URL, or ErrFileMissing if the object is gone.
	DownloadURL(ctx context.Context, p authz.Principal, reportID int64) (string, error)
	// Delete removes the stored object on a best-effort basis, then the record.
	Delete(ctx context.Context, p authz.Principal, reportID int64) error
}

// ReportOptions tune generation.
type ReportOptions struct {
	Strict   bool
	Location *time.Location
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger
}

type reportService struct {
	cases     repository.CaseRepository
	templates repository.TemplateRepository
	reports   repository.ReportRepository
	objects   ObjectStore
	source    TemplateSource

	strict  bool
	loc     *time.Location
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewReportService constructs a new ReportService.
func NewReportService(
	cases repository.CaseRepository,
	templates repository.TemplateRepository,
	reports repository.ReportRepository,
	objects ObjectStore,
	source TemplateSource,
	opts ReportOptions,
) ReportService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{
		cases:     cases,
		templates: templates,
		reports:   reports,
		objects:   objects,
		source:    source,
		strict:    opts.Strict,
		loc:       loc,
		metrics:   opts.Metrics,
		log:       opts.Logger.With().Str("component", "report").Logger(),
		now:       time.Now,
	}
}

type rendered struct {
	data        []byte
	contentType string
	ext         string
	strategy    string
}

func (s *reportService) Generate(ctx context.Context, p authz.Principal, caseID int64, in GenerateInput) (rep *model.GeneratedReport, err error) {
	ctx, span := tracer.Start(ctx, "report.Generate", trace.WithAttributes(
		attribute.Int64("case.id", caseID),
		attribute.Int64("template.id", in.TemplateID),
	))
	defer span.End()

	stage := StageCollecting
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(stage))
			s.metrics.Generation(metrics.OutcomeFailure, string(stage))
			s.log.Warn().Err(err).
				Str("event", "report_generation").
				Str("status", "failed").
				Str("stage", string(stage)).
				Int64("case_id", caseID).
				Int64("template_id", in.TemplateID).
				Send()
			err = &GenerationError{Stage: stage, Err: err}
			return
		}
		s.metrics.Generation(metrics.OutcomeSuccess, string(StagePersisted))
		s.log.Info().
			Str("event", "report_generation").
			Str("status", "success").
			Int64("case_id", caseID).
			Int64("report_id", rep.ID).
			Int64("size", rep.Size).
			Send()
	}()

	// collecting-input
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, err := loadCase(ctx, s.cases, p, caseID, true)
	if err != nil {
		return nil, err
	}
	tpl, err := s.templates.FindByID(ctx, in.TemplateID)
	if err != nil {
		return nil, notFound(err, "template", in.TemplateID)
	}
	if !tpl.HasFile() && strings.TrimSpace(tpl.Content) == "" {
		return nil, invalid("template %d has neither a file nor content", tpl.ID)
	}
	tokens := report.BuildTokens(c, report.Input{
		Conclusion:     in.Conclusion,
		Recommendation: in.Recommendation,
		OfficerName:    p.Name,
		GeneratedAt:    s.now().In(s.loc),
	})

	stage = StageRendering
	out, err := s.render(ctx, tpl, tokens)
	if err != nil {
		return nil, err
	}

	stage = StageUploading
	uctx, uspan := tracer.Start(ctx, "report.upload")
	obj, err := s.objects.Upload(uctx, out.data, reportFileName(c, tpl, out.ext), out.contentType, "cases", c.CaseRef, "reports")
	uspan.End()
	if err != nil {
		return nil, err
	}

	stage = StagePersisted
	rep = &model.GeneratedReport{
		CaseID:         c.ID,
		TemplateID:     tpl.ID,
		FileRef:        obj.Key,
		ContentType:    out.contentType,
		Size:           obj.Size,
		GeneratedBy:    p.UserID,
		Conclusion:     in.Conclusion,
		Recommendation: in.Recommendation,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		removeAll(ctx, s.objects, []*storage.Object{obj})
		return nil, err
	}
	return rep, nil
}

// render picks the strategy: a file reference wins over inline content.
func (s *reportService) render(ctx context.Context, tpl *model.Template, tokens report.Tokens) (rendered, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "report.render")
	defer span.End()

	if !tpl.HasFile() {
		span.SetAttributes(attribute.String("render.strategy", "legacy"))
		out := report.RenderText(tpl.Content, tokens)
		s.metrics.Render("legacy", time.Since(start))
		return rendered{data: out, contentType: report.LegacyContentType, ext: ".doc", strategy: "legacy"}, nil
	}

	span.SetAttributes(attribute.String("render.strategy", "packaged"))
	if tpl.Content != "" {
		s.log.Debug().Int64("template_id", tpl.ID).Msg("template has both file and content, using file")
	}
	if err := report.CheckExtension(tpl.FileRef); err != nil {
		return rendered{}, err
	}
	src, err := s.source.Fetch(ctx, tpl.FileRef)
	if err != nil {
		return rendered{}, err
	}
	out, err := report.RenderPackage(src, tokens, report.RenderOptions{Strict: s.strict})
	if err != nil {
		return rendered{}, err
	}
	s.metrics.Render("packaged", time.Since(start))
	return rendered{data: out, contentType: report.DocxContentType, ext: ".docx", strategy: "packaged"}, nil
}

var fileNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func reportFileName(c *model.Case, tpl *model.Template, ext string) string {
	name := strings.Trim(fileNameUnsafe.ReplaceAllString(tpl.Name, "_"), "_")
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("Report_%s_%s%s", c.CaseRef, name, ext)
}

func (s *reportService) ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.GeneratedReport, error) {
	if _, err := loadCase(ctx, s.cases, p, caseID, false); err != nil {
		return nil, err
	}
	return s.reports.ListByCase(ctx, caseID)
}

// find loads a report and checks access to its case.
func (s *reportService) find(ctx context.Context, p authz.Principal, id int64) (*model.GeneratedReport, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	rep, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "report", id)
	}
	if _, err := loadCase(ctx, s.cases, p, rep.CaseID, false); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *reportService) DownloadURL(ctx context.Context, p authz.Principal, reportID int64) (string, error) {
	rep, err := s.find(ctx, p, reportID)
	if err != nil {
		return "", err
	}
	return resolveExisting(ctx, s.objects, rep.FileRef, storage.Attachment, storage.BaseName(rep.FileRef))
}

func (s *reportService) Delete(ctx context.Context, p authz.Principal, reportID int64) error {
	rep, err := s.find(ctx, p, reportID)
	if err != nil {
		return err
	}
	s.objects.Delete(ctx, rep.FileRef)
	if err := s.reports.Delete(ctx, rep.ID); err != nil {
		return fmt.Errorf("delete report record: %w", err)
	}
	s.log.Info().Str("event", "report_deleted").Int64("report_id", rep.ID).Int64("case_id", rep.CaseID).Send()
	return nil
}
