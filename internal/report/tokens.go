// Package report turns a case and a template into a Word document.
//
// BuildTokens flattens a case into the fixed token set, RenderPackage
// substitutes tokens into a packaged .docx, RenderText interpolates legacy
// inline templates into Word-compatible HTML, and Fetcher loads template bytes
// from the object store or a remote URL.
package report

import (
	"strconv"
	"time"

	"claimdesk/internal/model"
)

// Tokens maps token names to display strings for a single render.
type Tokens map[string]string

// Input carries the caller-supplied values of a render.
type Input struct {
	Conclusion     string
	Recommendation string
	OfficerName    string
	GeneratedAt    time.Time
}

// TokenNames is the fixed set of tokens every mapping contains. Templates are
// authored against these names; entries may be added but never renamed.
var TokenNames = []string{
	// case
	"case_id", "insurance_company", "case_status",
	// patient
	"patient_name", "patient_age", "patient_gender", "patient_address",
	"patient_aadhaar", "patient_mobile", "patient_city", "insured_name",
	"admission_date", "discharge_date",
	// hospital
	"hospital_name", "hospital_address", "hospital_city", "hospital_registration",
	"hospital_contact", "total_beds", "accommodation_class", "icu_beds",
	"ot_count", "rmo_count", "nursing_staff_count", "doctor_name",
	"doctor_registration_number", "doctor_qualification", "doctor_contact",
	"pathology_center", "pathology_doctor_name", "pathologist_registration_number",
	"medical_store", "pharmacy_dl_number", "pharmacy_gst_number",
	// policy
	"policy_number", "policy_type", "sum_insured", "claim_type", "claim_amount",
	"claim_number", "tpa_name", "date_of_visit", "retail_or_corporate",
	// billing
	"bill_number", "total_bill_amount", "approved_expense_company", "approved_expense_fo",
	// investigation
	"investigation_findings", "observations", "trigger", "red_flags",
	"supporting_notes", "hospital_visit_findings", "doctor_visit_findings",
	"insured_visit_findings", "pharmacy_visit_findings", "lab_visit_findings",
	"diagnosis", "brief_description", "investigation_conclusion",
	// supplied at generation time
	"conclusion", "recommendation", "officer_name", "generated_date",
}

var knownTokens = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TokenNames))
	for _, name := range TokenNames {
		m[name] = struct{}{}
	}
	return m
}()

// UnknownTokens returns the names in names that are not in TokenNames, in order.
func UnknownTokens(names []string) []string {
	var out []string
	for _, name := range names {
		if _, ok := knownTokens[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

const (
	dateLayout          = "2006-01-02"
	generatedDateLayout = "2/1/2006"
)

// BuildTokens flattens c and in into a mapping holding every name in
// TokenNames. Missing sub-records and null fields map to "".
func BuildTokens(c *model.Case, in Input) Tokens {
	t := make(Tokens, len(TokenNames))
	for _, name := range TokenNames {
		t[name] = ""
	}

	t["conclusion"] = in.Conclusion
	t["recommendation"] = in.Recommendation
	t["officer_name"] = in.OfficerName
	if !in.GeneratedAt.IsZero() {
		t["generated_date"] = in.GeneratedAt.Format(generatedDateLayout)
	}

	if c == nil {
		return t
	}

	t["case_id"] = c.CaseRef
	t["insurance_company"] = c.InsuranceCompany
	t["case_status"] = string(c.Status)
	t["diagnosis"] = c.Diagnosis

	if p := c.Patient; p != nil {
		t["patient_name"] = p.Name
		t["patient_age"] = intString(p.Age)
		t["patient_gender"] = p.Gender
		t["patient_address"] = p.Address
		t["patient_aadhaar"] = p.AadhaarNumber
		t["patient_mobile"] = p.MobileNumber
		t["patient_city"] = p.City
		t["insured_name"] = p.InsuredName
		t["admission_date"] = dateString(p.AdmissionDate)
		t["discharge_date"] = dateString(p.DischargeDate)
	}

	if h := c.Hospital; h != nil {
		t["hospital_name"] = h.HospitalName
		t["hospital_address"] = h.Address
		t["hospital_city"] = h.City
		t["hospital_registration"] = h.RegistrationNumber
		t["hospital_contact"] = h.ContactNumber
		t["total_beds"] = intString(h.TotalBeds)
		t["accommodation_class"] = h.AccommodationClass
		t["icu_beds"] = intString(h.ICUBeds)
		t["ot_count"] = intString(h.OTCount)
		t["rmo_count"] = intString(h.RMOCount)
		t["nursing_staff_count"] = intString(h.NursingStaffCount)
		t["doctor_name"] = h.DoctorName
		t["doctor_registration_number"] = h.DoctorRegistrationNumber
		t["doctor_qualification"] = h.DoctorQualification
		t["doctor_contact"] = h.DoctorContact
		t["pathology_center"] = h.PathologyCenter
		t["pathology_doctor_name"] = h.PathologyDoctorName
		t["pathologist_registration_number"] = h.PathologistRegistrationNumber
		t["medical_store"] = h.MedicalStore
		t["pharmacy_dl_number"] = h.PharmacyDLNumber
		t["pharmacy_gst_number"] = h.PharmacyGSTNumber
	}

	if p := c.Policy; p != nil {
		t["policy_number"] = p.PolicyNumber
		t["policy_type"] = p.PolicyType
		t["sum_insured"] = moneyString(p.SumInsured)
		t["claim_type"] = p.ClaimType
		t["claim_amount"] = moneyString(p.ClaimAmount)
		t["claim_number"] = p.ClaimNumber
		t["tpa_name"] = p.TPAName
		t["date_of_visit"] = dateString(p.DateOfVisit)
		t["retail_or_corporate"] = p.RetailOrCorporate
	}

	if b := c.Bill; b != nil {
		t["bill_number"] = b.BillNumber
		t["total_bill_amount"] = moneyString(b.TotalBillAmount)
		t["approved_expense_company"] = moneyString(b.ApprovedExpenseCompany)
		t["approved_expense_fo"] = moneyString(b.ApprovedExpenseFO)
	}

	if n := c.Investigation; n != nil {
		t["investigation_findings"] = n.Findings
		t["observations"] = n.Observations
		t["trigger"] = n.Trigger
		t["red_flags"] = n.RedFlags
		t["supporting_notes"] = n.SupportingNotes
		t["hospital_visit_findings"] = n.HospitalVisitFindings
		t["doctor_visit_findings"] = n.DoctorVisitFindings
		t["insured_visit_findings"] = n.InsuredVisitFindings
		t["pharmacy_visit_findings"] = n.PharmacyVisitFindings
		t["lab_visit_findings"] = n.LabVisitFindings
		if n.Diagnosis != "" {
			t["diagnosis"] = n.Diagnosis
		}
		t["brief_description"] = n.BriefDescription
		t["investigation_conclusion"] = n.Conclusion
	}

	return t
}

func intString(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func moneyString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func dateString(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.Format(dateLayout)
}
