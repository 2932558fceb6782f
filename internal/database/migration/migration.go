package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created near the end, so a partially applied schema is retried.
const sentinelTable = "public.case_documents"

var steps = []migrationStep{
	{
		Name: "create_table_cases",
		SQL: `CREATE TABLE IF NOT EXISTS cases (
  id                BIGSERIAL   PRIMARY KEY,
  case_ref          TEXT        NOT NULL UNIQUE,
  officer_id        BIGINT      NOT NULL,
  field_officer_id  BIGINT,
  insurance_company TEXT        NOT NULL,
  status            TEXT        NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'in_progress', 'closed')),
  diagnosis         TEXT        NOT NULL DEFAULT '',
  remark            TEXT        NOT NULL DEFAULT '',
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_cases_officer",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_officer ON cases (officer_id, field_officer_id);`,
	},
	{
		Name: "create_table_patient_details",
		SQL: `CREATE TABLE IF NOT EXISTS patient_details (
  case_id        BIGINT      PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  patient_name   TEXT        NOT NULL DEFAULT '',
  age            BIGINT,
  gender         TEXT        NOT NULL DEFAULT '',
  address        TEXT        NOT NULL DEFAULT '',
  aadhaar_number TEXT        NOT NULL DEFAULT '',
  mobile_number  TEXT        NOT NULL DEFAULT '',
  city           TEXT        NOT NULL DEFAULT '',
  insured_name   TEXT        NOT NULL DEFAULT '',
  admission_date DATE,
  discharge_date DATE,
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_hospital_details",
		SQL: `CREATE TABLE IF NOT EXISTS hospital_details (
  case_id                         BIGINT      PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  hospital_name                   TEXT        NOT NULL DEFAULT '',
  address                         TEXT        NOT NULL DEFAULT '',
  city                            TEXT        NOT NULL DEFAULT '',
  registration_number             TEXT        NOT NULL DEFAULT '',
  contact_number                  TEXT        NOT NULL DEFAULT '',
  total_beds                      BIGINT,
  accommodation_class             TEXT        NOT NULL DEFAULT '',
  icu_beds                        BIGINT,
  ot_count                        BIGINT,
  rmo_count                       BIGINT,
  nursing_staff_count             BIGINT,
  doctor_name                     TEXT        NOT NULL DEFAULT '',
  doctor_registration_number      TEXT        NOT NULL DEFAULT '',
  doctor_qualification            TEXT        NOT NULL DEFAULT '',
  doctor_contact                  TEXT        NOT NULL DEFAULT '',
  pathology_center                TEXT        NOT NULL DEFAULT '',
  pathology_doctor_name           TEXT        NOT NULL DEFAULT '',
  pathologist_registration_number TEXT        NOT NULL DEFAULT '',
  medical_store                   TEXT        NOT NULL DEFAULT '',
  pharmacy_dl_number              TEXT        NOT NULL DEFAULT '',
  pharmacy_gst_number             TEXT        NOT NULL DEFAULT '',
  updated_at                      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_policy_details",
		SQL: `CREATE TABLE IF NOT EXISTS policy_details (
  case_id             BIGINT         PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  policy_number       TEXT           NOT NULL DEFAULT '',
  policy_type         TEXT           NOT NULL DEFAULT '',
  sum_insured         NUMERIC(14, 2),
  claim_type          TEXT           NOT NULL DEFAULT '',
  claim_amount        NUMERIC(14, 2),
  claim_number        TEXT           NOT NULL DEFAULT '',
  tpa_name            TEXT           NOT NULL DEFAULT '',
  date_of_visit       DATE,
  retail_or_corporate TEXT           NOT NULL DEFAULT '',
  updated_at          TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_bill_details",
		SQL: `CREATE TABLE IF NOT EXISTS bill_details (
  case_id                  BIGINT         PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  gst_bill                 TEXT           NOT NULL DEFAULT '',
  bill_number              TEXT           NOT NULL DEFAULT '',
  mrd_charge               NUMERIC(14, 2),
  approved_expense_company NUMERIC(14, 2),
  approved_expense_fo      NUMERIC(14, 2),
  total_bill_amount        NUMERIC(14, 2),
  payment_received_date    DATE,
  received_amount          NUMERIC(14, 2),
  other_expenses           TEXT           NOT NULL DEFAULT '',
  updated_at               TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_investigation_notes",
		SQL: `CREATE TABLE IF NOT EXISTS investigation_notes (
  case_id                 BIGINT      PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  findings                TEXT        NOT NULL DEFAULT '',
  observations            TEXT        NOT NULL DEFAULT '',
  trigger_reason          TEXT        NOT NULL DEFAULT '',
  red_flags               TEXT        NOT NULL DEFAULT '',
  supporting_notes        TEXT        NOT NULL DEFAULT '',
  hospital_visit_findings TEXT        NOT NULL DEFAULT '',
  doctor_visit_findings   TEXT        NOT NULL DEFAULT '',
  insured_visit_findings  TEXT        NOT NULL DEFAULT '',
  pharmacy_visit_findings TEXT        NOT NULL DEFAULT '',
  lab_visit_findings      TEXT        NOT NULL DEFAULT '',
  diagnosis               TEXT        NOT NULL DEFAULT '',
  brief_description       TEXT        NOT NULL DEFAULT '',
  conclusion              TEXT        NOT NULL DEFAULT '',
  updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_report_templates",
		SQL: `CREATE TABLE IF NOT EXISTS report_templates (
  id                BIGSERIAL   PRIMARY KEY,
  insurance_company TEXT        NOT NULL,
  template_name     TEXT        NOT NULL,
  template_content  TEXT        NOT NULL DEFAULT '',
  file_path         TEXT        NOT NULL DEFAULT '',
  created_by        BIGINT      NOT NULL,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_report_templates_company",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_report_templates_company ON report_templates (insurance_company);`,
	},
	{
		Name: "create_table_generated_reports",
		SQL: `CREATE TABLE IF NOT EXISTS generated_reports (
  id             BIGSERIAL   PRIMARY KEY,
  case_id        BIGINT      NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  template_id    BIGINT      NOT NULL,
  file_path      TEXT        NOT NULL,
  content_type   TEXT        NOT NULL,
  size           BIGINT      NOT NULL CHECK (size >= 0),
  generated_by   BIGINT      NOT NULL,
  conclusion     TEXT        NOT NULL DEFAULT '',
  recommendation TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_generated_reports_case",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_generated_reports_case ON generated_reports (case_id, created_at);`,
	},
	{
		Name: "create_table_dispatch_details",
		SQL: `CREATE TABLE IF NOT EXISTS dispatch_details (
  case_id               BIGINT      PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
  hard_copy_submit_date DATE,
  sender_name_address   TEXT        NOT NULL DEFAULT '',
  courier_name          TEXT        NOT NULL DEFAULT '',
  pod_number            TEXT        NOT NULL DEFAULT '',
  updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_commissions",
		SQL: `CREATE TABLE IF NOT EXISTS commissions (
  id              BIGSERIAL      PRIMARY KEY,
  case_id         BIGINT         NOT NULL UNIQUE REFERENCES cases (id) ON DELETE CASCADE,
  commission_type TEXT           NOT NULL CHECK (commission_type IN ('fixed', 'percentage', 'custom')),
  amount          NUMERIC(12, 2) NOT NULL DEFAULT 0,
  notes           TEXT           NOT NULL DEFAULT '',
  status          TEXT           NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'paid')),
  created_at      TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_companies",
		SQL: `CREATE TABLE IF NOT EXISTS companies (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL,
  active     BOOLEAN     NOT NULL DEFAULT true,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_companies_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_name ON companies (lower(name));`,
	},
	{
		Name: "create_table_case_documents",
		SQL: `CREATE TABLE IF NOT EXISTS case_documents (
  id            BIGSERIAL   PRIMARY KEY,
  case_id       BIGINT      NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  document_type TEXT        NOT NULL DEFAULT '',
  doc_source    TEXT        NOT NULL DEFAULT '',
  file_name     TEXT        NOT NULL,
  file_path     TEXT        NOT NULL UNIQUE,
  content_type  TEXT        NOT NULL,
  size          BIGINT      NOT NULL CHECK (size >= 0),
  uploaded_by   BIGINT      NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_case_documents_case",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_case_documents_case ON case_documents (case_id, created_at);`,
	},
}

// EnsureMigrated checks whether the schema exists and applies every step if it doesn't.
// Steps are idempotent, so an interrupted migration is safe to rerun.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Int("steps", len(steps)).Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()
	return nil
}
