package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"claimdesk/internal/model"
)

// detailTable maps a one-row-per-case detail struct onto its table.
// fields returns pointers to the struct fields in column order; the same
// pointers serve as scan targets and, dereferenced, as insert arguments.
type detailTable[T any] struct {
	name    string
	columns []string
	fields  func(*T) []any
}

func (t detailTable[T]) selectSQL() string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE case_id = $1`, strings.Join(t.columns, ", "), t.name)
}

func (t detailTable[T]) upsertSQL() string {
	placeholders := make([]string, len(t.columns)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sets := make([]string, 0, len(t.columns)+1)
	for _, c := range t.columns {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	sets = append(sets, "updated_at = NOW()")
	return fmt.Sprintf(`INSERT INTO %s (case_id, %s) VALUES (%s) ON CONFLICT (case_id) DO UPDATE SET %s`,
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), strings.Join(sets, ", "))
}

func findDetail[T any](ctx context.Context, db *sql.DB, t detailTable[T], caseID int64) (*T, error) {
	var d T
	if err := db.QueryRowContext(ctx, t.selectSQL(), caseID).Scan(t.fields(&d)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", t.name, err)
	}
	return &d, nil
}

func upsertDetail[T any](ctx context.Context, db *sql.DB, t detailTable[T], caseID int64, d *T) error {
	ptrs := t.fields(d)
	args := make([]any, 0, len(ptrs)+1)
	args = append(args, caseID)
	for _, p := range ptrs {
		args = append(args, deref(p))
	}
	if _, err := db.ExecContext(ctx, t.upsertSQL(), args...); err != nil {
		return fmt.Errorf("save %s: %w", t.name, err)
	}
	return nil
}

// deref turns a field pointer into a driver argument; nil optional fields become NULL.
func deref(p any) any {
	switch v := p.(type) {
	case *string:
		return *v
	case **int64:
		if *v == nil {
			return nil
		}
		return **v
	case **float64:
		if *v == nil {
			return nil
		}
		return **v
	case **time.Time:
		if *v == nil {
			return nil
		}
		return **v
	}
	return p
}

var patientTable = detailTable[model.PatientDetail]{
	name: "patient_details",
	columns: []string{
		"patient_name", "age", "gender", "address", "aadhaar_number", "mobile_number",
		"city", "insured_name", "admission_date", "discharge_date",
	},
	fields: func(d *model.PatientDetail) []any {
		return []any{
			&d.Name, &d.Age, &d.Gender, &d.Address, &d.AadhaarNumber, &d.MobileNumber,
			&d.City, &d.InsuredName, &d.AdmissionDate, &d.DischargeDate,
		}
	},
}

var hospitalTable = detailTable[model.HospitalDetail]{
	name: "hospital_details",
	columns: []string{
		"hospital_name", "address", "city", "registration_number", "contact_number",
		"total_beds", "accommodation_class", "icu_beds", "ot_count", "rmo_count", "nursing_staff_count",
		"doctor_name", "doctor_registration_number", "doctor_qualification", "doctor_contact",
		"pathology_center", "pathology_doctor_name", "pathologist_registration_number",
		"medical_store", "pharmacy_dl_number", "pharmacy_gst_number",
	},
	fields: func(d *model.HospitalDetail) []any {
		return []any{
			&d.HospitalName, &d.Address, &d.City, &d.RegistrationNumber, &d.ContactNumber,
			&d.TotalBeds, &d.AccommodationClass, &d.ICUBeds, &d.OTCount, &d.RMOCount, &d.NursingStaffCount,
			&d.DoctorName, &d.DoctorRegistrationNumber, &d.DoctorQualification, &d.DoctorContact,
			&d.PathologyCenter, &d.PathologyDoctorName, &d.PathologistRegistrationNumber,
			&d.MedicalStore, &d.PharmacyDLNumber, &d.PharmacyGSTNumber,
		}
	},
}

var policyTable = detailTable[model.PolicyDetail]{
	name: "policy_details",
	columns: []string{
		"policy_number", "policy_type", "sum_insured", "claim_type", "claim_amount",
		"claim_number", "tpa_name", "date_of_visit", "retail_or_corporate",
	},
	fields: func(d *model.PolicyDetail) []any {
		return []any{
			&d.PolicyNumber, &d.PolicyType, &d.SumInsured, &d.ClaimType, &d.ClaimAmount,
			&d.ClaimNumber, &d.TPAName, &d.DateOfVisit, &d.RetailOrCorporate,
		}
	},
}

var billTable = detailTable[model.BillDetail]{
	name: "bill_details",
	columns: []string{
		"gst_bill", "bill_number", "mrd_charge", "approved_expense_company", "approved_expense_fo",
		"total_bill_amount", "payment_received_date", "received_amount", "other_expenses",
	},
	fields: func(d *model.BillDetail) []any {
		return []any{
			&d.GSTBill, &d.BillNumber, &d.MRDCharge, &d.ApprovedExpenseCompany, &d.ApprovedExpenseFO,
			&d.TotalBillAmount, &d.PaymentReceivedDate, &d.ReceivedAmount, &d.OtherExpenses,
		}
	},
}

var investigationTable = detailTable[model.InvestigationNote]{
	name: "investigation_notes",
	columns: []string{
		"findings", "observations", "trigger_reason", "red_flags", "supporting_notes",
		"hospital_visit_findings", "doctor_visit_findings", "insured_visit_findings",
		"pharmacy_visit_findings", "lab_visit_findings", "diagnosis", "brief_description", "conclusion",
	},
	fields: func(d *model.InvestigationNote) []any {
		return []any{
			&d.Findings, &d.Observations, &d.Trigger, &d.RedFlags, &d.SupportingNotes,
			&d.HospitalVisitFindings, &d.DoctorVisitFindings, &d.InsuredVisitFindings,
			&d.PharmacyVisitFindings, &d.LabVisitFindings, &d.Diagnosis, &d.BriefDescription, &d.Conclusion,
		}
	},
}

var dispatchTable = detailTable[model.DispatchDetail]{
	name:    "dispatch_details",
	columns: []string{"hard_copy_submit_date", "sender_name_address", "courier_name", "pod_number"},
	fields: func(d *model.DispatchDetail) []any {
		return []any{&d.HardCopySubmitDate, &d.SenderNameAddress, &d.CourierName, &d.PODNumber}
	},
}
