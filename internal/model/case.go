package model

import "time"

// CaseStatus is the lifecycle state of an investigation case.
type CaseStatus string

const (
	CaseOpen       CaseStatus = "open"
	CaseInProgress CaseStatus = "in_progress"
	CaseClosed     CaseStatus = "closed"
)

// Valid reports whether s is one of the known statuses.
func (s CaseStatus) Valid() bool {
	switch s {
	case CaseOpen, CaseInProgress, CaseClosed:
		return true
	}
	return false
}

// Case is an insurance-claim investigation assigned to an officer.
// The detail pointers are nil when the sub-record does not exist or was not loaded.
type Case struct {
	ID               int64      `json:"id"`
	CaseRef          string     `json:"case_ref"`
	OfficerID        int64      `json:"officer_id"`
	FieldOfficerID   *int64     `json:"field_officer_id,omitempty"`
	InsuranceCompany string     `json:"insurance_company"`
	Status           CaseStatus `json:"status"`
	Diagnosis        string     `json:"diagnosis,omitempty"`
	Remark           string     `json:"remark,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Patient       *PatientDetail     `json:"patient,omitempty"`
	Hospital      *HospitalDetail    `json:"hospital,omitempty"`
	Policy        *PolicyDetail      `json:"policy,omitempty"`
	Bill          *BillDetail        `json:"bill,omitempty"`
	Investigation *InvestigationNote `json:"investigation,omitempty"`
	Dispatch      *DispatchDetail    `json:"dispatch,omitempty"`
}

// PatientDetail describes the claimant admitted to hospital.
type PatientDetail struct {
	Name          string     `json:"name"`
	Age           *int64     `json:"age,omitempty"`
	Gender        string     `json:"gender"`
	Address       string     `json:"address"`
	AadhaarNumber string     `json:"aadhaar_number"`
	MobileNumber  string     `json:"mobile_number"`
	City          string     `json:"city"`
	InsuredName   string     `json:"insured_name"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	DischargeDate *time.Time `json:"discharge_date,omitempty"`
}

// HospitalDetail holds the treating hospital's infrastructure, doctor,
// pathology and pharmacy details.
type HospitalDetail struct {
	HospitalName                  string `json:"hospital_name"`
	Address                       string `json:"address"`
	City                          string `json:"city"`
	RegistrationNumber            string `json:"registration_number"`
	ContactNumber                 string `json:"contact_number"`
	TotalBeds                     *int64 `json:"total_beds,omitempty"`
	AccommodationClass            string `json:"accommodation_class"`
	ICUBeds                       *int64 `json:"icu_beds,omitempty"`
	OTCount                       *int64 `json:"ot_count,omitempty"`
	RMOCount                      *int64 `json:"rmo_count,omitempty"`
	NursingStaffCount             *int64 `json:"nursing_staff_count,omitempty"`
	DoctorName                    string `json:"doctor_name"`
	DoctorRegistrationNumber      string `json:"doctor_registration_number"`
	DoctorQualification           string `json:"doctor_qualification"`
	DoctorContact                 string `json:"doctor_contact"`
	PathologyCenter               string `json:"pathology_center"`
	PathologyDoctorName           string `json:"pathology_doctor_name"`
	PathologistRegistrationNumber string `json:"pathologist_registration_number"`
	MedicalStore                  string `json:"medical_store"`
	PharmacyDLNumber              string `json:"pharmacy_dl_number"`
	PharmacyGSTNumber             string `json:"pharmacy_gst_number"`
}

// PolicyDetail is the insurance policy and claim under investigation.
type PolicyDetail struct {
	PolicyNumber      string     `json:"policy_number"`
	PolicyType        string     `json:"policy_type"`
	SumInsured        *float64   `json:"sum_insured,omitempty"`
	ClaimType         string     `json:"claim_type"`
	ClaimAmount       *float64   `json:"claim_amount,omitempty"`
	ClaimNumber       string     `json:"claim_number"`
	TPAName           string     `json:"tpa_name"`
	DateOfVisit       *time.Time `json:"date_of_visit,omitempty"`
	RetailOrCorporate string     `json:"retail_or_corporate"`
}

// BillDetail tracks billing for the investigation itself.
type BillDetail struct {
	GSTBill                string     `json:"gst_bill"`
	BillNumber             string     `json:"bill_number"`
	MRDCharge              *float64   `json:"mrd_charge,omitempty"`
	ApprovedExpenseCompany *float64   `json:"approved_expense_company,omitempty"`
	ApprovedExpenseFO      *float64   `json:"approved_expense_fo,omitempty"`
	TotalBillAmount        *float64   `json:"total_bill_amount,omitempty"`
	PaymentReceivedDate    *time.Time `json:"payment_received_date,omitempty"`
	ReceivedAmount         *float64   `json:"received_amount,omitempty"`
	OtherExpenses          string     `json:"other_expenses"`
}

// InvestigationNote carries the officer's findings from each visit.
type InvestigationNote struct {
	Findings              string `json:"findings"`
	Observations          string `json:"observations"`
	Trigger               string `json:"trigger"`
	RedFlags              string `json:"red_flags"`
	SupportingNotes       string `json:"supporting_notes"`
	HospitalVisitFindings string `json:"hospital_visit_findings"`
	DoctorVisitFindings   string `json:"doctor_visit_findings"`
	InsuredVisitFindings  string `json:"insured_visit_findings"`
	PharmacyVisitFindings string `json:"pharmacy_visit_findings"`
	LabVisitFindings      string `json:"lab_visit_findings"`
	Diagnosis             string `json:"diagnosis"`
	BriefDescription      string `json:"brief_description"`
	Conclusion            string `json:"conclusion"`
}

// DispatchDetail records how the hard copy of the report was sent to the insurer.
type DispatchDetail struct {
	HardCopySubmitDate *time.Time `json:"hard_copy_submit_date,omitempty"`
	SenderNameAddress  string     `json:"sender_name_address"`
	CourierName        string     `json:"courier_name"`
	PODNumber          string     `json:"pod_number"`
}
