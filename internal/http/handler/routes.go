package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/authz"
	"claimdesk/internal/http/middleware"
	"claimdesk/internal/service"
)

// Deps carries what the routes need.
type Deps struct {
	DB     *sql.DB
	Tokens middleware.TokenParser
	Policy authz.Policy

	Cases       service.CaseService
	Reports     service.ReportService
	Templates   service.TemplateService
	Documents   service.CaseDocumentService
	Commissions service.CommissionService
	Companies   service.CompanyService
	Billing     service.BillingService

	MaxUploadFiles int
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Every route outside the health checks requires a bearer token and is
// authorized once against the policy.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", Liveness())

	auth := middleware.Authenticate(d.Tokens)
	can := func(a authz.Action) fiber.Handler { return middleware.Authorize(d.Policy, a) }

	app.Post("/cases", auth, can(authz.CaseCreate), CreateCase(d.Cases))
	app.Get("/cases", auth, can(authz.CaseRead), ListCases(d.Cases))
	app.Get("/cases/:id", auth, can(authz.CaseRead), GetCase(d.Cases))
	app.Patch("/cases/:id/status", auth, can(authz.CaseUpdate), UpdateCaseStatus(d.Cases))
	app.Put("/cases/:id/details", auth, can(authz.CaseUpdate), SaveCaseDetails(d.Cases))
	app.Delete("/cases/:id", auth, can(authz.CaseDelete), DeleteCase(d.Cases))

	app.Get("/cases/:id/commission", auth, can(authz.CommissionRead), GetCommission(d.Commissions))
	app.Put("/cases/:id/commission", auth, can(authz.CommissionManage), SaveCommission(d.Commissions))

	app.Get("/cases/:id/reports", auth, can(authz.ReportRead), ListReports(d.Reports))
	app.Post("/cases/:id/reports", auth, can(authz.ReportGenerate), GenerateReport(d.Reports))
	app.Get("/reports/:id/download", auth, can(authz.ReportRead), DownloadReport(d.Reports))
	app.Delete("/reports/:id", auth, can(authz.ReportDelete), DeleteReport(d.Reports))

	app.Post("/templates", auth, can(authz.TemplateManage), CreateTemplate(d.Templates))
	app.Get("/templates", auth, can(authz.TemplateRead), ListTemplates(d.Templates))
	app.Get("/templates/:id", auth, can(authz.TemplateRead), GetTemplate(d.Templates))
	app.Delete("/templates/:id", auth, can(authz.TemplateManage), DeleteTemplate(d.Templates))

	app.Post("/cases/:id/documents", auth, can(authz.DocumentUpload), UploadDocuments(d.Documents, d.MaxUploadFiles))
	app.Get("/cases/:id/documents", auth, can(authz.DocumentRead), ListDocuments(d.Documents))
	app.Get("/documents/:id/view", auth, can(authz.DocumentRead), ViewDocument(d.Documents))
	app.Get("/documents/:id/download", auth, can(authz.DocumentRead), DownloadDocument(d.Documents))
	app.Delete("/documents/:id", auth, can(authz.DocumentDelete), DeleteDocument(d.Documents))

	app.Get("/companies", auth, can(authz.CompanyRead), ListCompanies(d.Companies))
	app.Post("/companies", auth, can(authz.CompanyManage), CreateCompany(d.Companies))
	app.Post("/companies/:id/toggle", auth, can(authz.CompanyManage), ToggleCompany(d.Companies))

	app.Get("/billing/me", auth, can(authz.BillingOwn), MyBilling(d.Billing))
	app.Get("/billing/reports", auth, can(authz.BillingReport), BillingReport(d.Billing))
}
