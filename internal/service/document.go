package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"claimdesk/internal/authz"
	"claimdesk/internal/metrics"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
	"claimdesk/internal/storage"
)

// allowedDocumentTypes maps accepted extensions to their MIME type.
var allowedDocumentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadFile is one file of a multipart upload, already read into memory.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// CaseDocumentService defines the use cases for case evidence files.
type CaseDocumentService interface {
	// UploadBatch stores every file or none of them.
	UploadBatch(ctx context.Context, p authz.Principal, caseID int64, files []UploadFile, docType, source string) ([]model.CaseDocument, error)
	ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.CaseDocument, error)
	ViewURL(ctx context.Context, p authz.Principal, id int64) (string, error)
	DownloadURL(ctx context.Context, p authz.Principal, id int64) (string, error)
	Delete(ctx context.Context, p authz.Principal, id int64) error
}

// DocumentOptions bound uploads.
type DocumentOptions struct {
	Concurrency  int
	MaxFileBytes int64
	MaxFiles     int
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
}

type caseDocumentService struct {
	cases   repository.CaseRepository
	docs    repository.CaseDocumentRepository
	objects ObjectStore

	concurrency  int
	maxFileBytes int64
	maxFiles     int
	metrics      *metrics.Metrics
	log          zerolog.Logger
}

// NewCaseDocumentService constructs a new CaseDocumentService.
func NewCaseDocumentService(cases repository.CaseRepository, docs repository.CaseDocumentRepository, objects ObjectStore, opts DocumentOptions) CaseDocumentService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 10
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = 10
	}
	return &caseDocumentService{
		cases:        cases,
		docs:         docs,
		objects:      objects,
		concurrency:  opts.Concurrency,
		maxFileBytes: opts.MaxFileBytes,
		maxFiles:     opts.MaxFiles,
		metrics:      opts.Metrics,
		log:          opts.Logger.With().Str("component", "documents").Logger(),
	}
}

// documentContentType returns the canonical MIME type of f, or "" when the type is not accepted.
// The declared type must agree with the extension when both are known.
func documentContentType(f UploadFile) string {
	byExt := allowedDocumentTypes[strings.ToLower(filepath.Ext(f.Name))]
	declared, _, _ := mime.ParseMediaType(f.ContentType)
	if declared == "" || declared == "application/octet-stream" {
		return byExt
	}
	for _, ct := range allowedDocumentTypes {
		if ct == declared {
			if byExt != "" && byExt != declared {
				return ""
			}
			return declared
		}
	}
	return ""
}

func (s *caseDocumentService) validate(files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, invalid("no files uploaded")
	}
	if len(files) > s.maxFiles {
		return nil, invalid("at most %d files per upload", s.maxFiles)
	}
	types := make([]string, len(files))
	for i, f := range files {
		if len(f.Data) == 0 {
			return nil, invalid("%s is empty", f.Name)
		}
		if s.maxFileBytes > 0 && int64(len(f.Data)) > s.maxFileBytes {
			return nil, invalid("%s exceeds the %d MB limit", f.Name, s.maxFileBytes>>20)
		}
		ct := documentContentType(f)
		if ct == "" {
			return nil, invalid("%s: only PDF, Word, Excel, JPEG and PNG files are allowed", f.Name)
		}
		types[i] = ct
	}
	return types, nil
}

func (s *caseDocumentService) UploadBatch(ctx context.Context, p authz.Principal, caseID int64, files []UploadFile, docType, source string) ([]model.CaseDocument, error) {
	types, err := s.validate(files)
	if err != nil {
		return nil, err
	}
	c, err := loadCase(ctx, s.cases, p, caseID, false)
	if err != nil {
		return nil, err
	}
	if c.Status == model.CaseClosed && !p.IsAdmin() {
		return nil, ErrCaseClosed
	}

	ctx, span := tracer.Start(ctx, "documents.UploadBatch")
	defer span.End()

	objs := make([]*storage.Object, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, f := range files {
		g.Go(func() error {
			obj, err := s.objects.Upload(gctx, f.Data, f.Name, types[i], "cases", c.CaseRef, "documents")
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			objs[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		removeAll(ctx, s.objects, objs)
		s.metrics.Uploads(metrics.OutcomeFailure, len(files))
		s.log.Warn().Err(err).Str("event", "document_upload").Str("status", "failed").Int64("case_id", caseID).Send()
		return nil, err
	}

	records := make([]*model.CaseDocument, len(files))
	for i, f := range files {
		records[i] = &model.CaseDocument{
			CaseID:       c.ID,
			DocumentType: docType,
			Source:       source,
			FileName:     f.Name,
			FileRef:      objs[i].Key,
			ContentType:  types[i],
			Size:         objs[i].Size,
			UploadedBy:   p.UserID,
		}
	}
	if err := s.docs.CreateBatch(ctx, records); err != nil {
		removeAll(ctx, s.objects, objs)
		s.metrics.Uploads(metrics.OutcomeFailure, len(files))
		return nil, fmt.Errorf("save documents: %w", err)
	}

	s.metrics.Uploads(metrics.OutcomeSuccess, len(files))
	s.log.Info().Str("event", "document_upload").Str("status", "success").Int64("case_id", caseID).Int("files", len(files)).Send()

	out := make([]model.CaseDocument, len(records))
	for i, r := range records {
		out[i] = *r
	}
	return out, nil
}

func (s *caseDocumentService) ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.CaseDocument, error) {
	if _, err := loadCase(ctx, s.cases, p, caseID, false); err != nil {
		return nil, err
	}
	return s.docs.ListByCase(ctx, caseID)
}

func (s *caseDocumentService) find(ctx context.Context, p authz.Principal, id int64) (*model.CaseDocument, *model.Case, error) {
	if id <= 0 {
		return nil, nil, ErrIDRequired
	}
	d, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, nil, notFound(err, "document", id)
	}
	c, err := loadCase(ctx, s.cases, p, d.CaseID, false)
	if err != nil {
		return nil, nil, err
	}
	return d, c, nil
}

func (s *caseDocumentService) ViewURL(ctx context.Context, p authz.Principal, id int64) (string, error) {
	d, _, err := s.find(ctx, p, id)
	if err != nil {
		return "", err
	}
	return resolveExisting(ctx, s.objects, d.FileRef, storage.Inline, d.FileName)
}

func (s *caseDocumentService) DownloadURL(ctx context.Context, p authz.Principal, id int64) (string, error) {
	d, _, err := s.find(ctx, p, id)
	if err != nil {
		return "", err
	}
	return resolveExisting(ctx, s.objects, d.FileRef, storage.Attachment, d.FileName)
}

func (s *caseDocumentService) Delete(ctx context.Context, p authz.Principal, id int64) error {
	d, c, err := s.find(ctx, p, id)
	if err != nil {
		return err
	}
	if c.Status == model.CaseClosed && !p.IsAdmin() {
		return ErrCaseClosed
	}
	s.objects.Delete(ctx, d.FileRef)
	return s.docs.Delete(ctx, d.ID)
}
