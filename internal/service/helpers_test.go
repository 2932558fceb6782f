package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/storage"
)

func officer() authz.Principal {
	return authz.Principal{UserID: 7, Name: "Asha Rao", Role: authz.RoleOfficer, Scope: authz.ScopeOwn}
}

func admin() authz.Principal {
	return authz.Principal{UserID: 1, Name: "Admin", Role: authz.RoleAdmin, Scope: authz.ScopeAny}
}

func newObjects() (*storage.Client, *storage.Memory) {
	mem := storage.NewMemory("test")
	return storage.NewClient(mem, time.Minute, zerolog.Nop()), mem
}

func sampleCase() *model.Case {
	age := int64(41)
	return &model.Case{
		ID:               5,
		CaseRef:          "CLM-5",
		OfficerID:        7,
		InsuranceCompany: "Acme Insurance",
		Status:           model.CaseOpen,
		Patient:          &model.PatientDetail{Name: "Ravi Kumar", Age: &age},
	}
}

// buildDocx returns a minimal word package whose body is one paragraph of runs.
func buildDocx(t *testing.T, runs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p>`)
	for _, r := range runs {
		body.WriteString(`<w:r><w:t>` + r + `</w:t></w:r>`)
	}
	body.WriteString(`</w:p></w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":   body.String(),
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type sourceFunc func(ctx context.Context, ref string) ([]byte, error)

func (f sourceFunc) Fetch(ctx context.Context, ref string) ([]byte, error) { return f(ctx, ref) }

// flakyObjects fails uploads of one file name and delegates everything else.
type flakyObjects struct {
	*storage.Client
	failName string
}

func (f flakyObjects) Upload(ctx context.Context, data []byte, name, contentType string, folders ...string) (*storage.Object, error) {
	if name == f.failName {
		return nil, errors.New("connection reset by peer")
	}
	return f.Client.Upload(ctx, data, name, contentType, folders...)
}
