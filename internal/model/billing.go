package model

import "time"

// BillingLine is one field-officer case with the expense approved for the officer.
type BillingLine struct {
	CaseID            int64      `json:"case_id"`
	CaseRef           string     `json:"case_ref"`
	FieldOfficerID    int64      `json:"field_officer_id"`
	InsuranceCompany  string     `json:"insurance_company"`
	Status            CaseStatus `json:"status"`
	BillNumber        string     `json:"bill_number"`
	ApprovedExpenseFO *float64   `json:"approved_expense_fo,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// OfficerBilling rolls up the billing lines of one field officer.
type OfficerBilling struct {
	FieldOfficerID  int64         `json:"field_officer_id"`
	Cases           []BillingLine `json:"cases"`
	TotalApprovedFO float64       `json:"total_approved_fo"`
}
