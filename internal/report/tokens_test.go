package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"claimdesk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestBuildTokens_AllKeysPresent(t *testing.T) {
	cases := map[string]*model.Case{
		"nil case":             nil,
		"case without details": {ID: 1, CaseRef: "CASE-1", InsuranceCompany: "Care Health", Status: model.CaseOpen},
		"case with empty details": {
			ID:            2,
			CaseRef:       "CASE-2",
			Patient:       &model.PatientDetail{},
			Hospital:      &model.HospitalDetail{},
			Policy:        &model.PolicyDetail{},
			Bill:          &model.BillDetail{},
			Investigation: &model.InvestigationNote{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			tokens := BuildTokens(c, Input{})

			assert.Len(t, tokens, len(TokenNames))
			for _, key := range TokenNames {
				v, ok := tokens[key]
				assert.True(t, ok, "missing token %s", key)
				assert.NotEqual(t, "null", v)
				assert.NotEqual(t, "<nil>", v)
			}
		})
	}
}

func TestBuildTokens_Values(t *testing.T) {
	admitted := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	c := &model.Case{
		CaseRef:          "CASE-42",
		InsuranceCompany: "Reliance General",
		Status:           model.CaseInProgress,
		Diagnosis:        "Dengue",
		Patient: &model.PatientDetail{
			Name:          "Jane Doe",
			Age:           ptr(int64(45)),
			InsuredName:   "John Doe",
			AdmissionDate: &admitted,
		},
		Hospital: &model.HospitalDetail{
			HospitalName: "City Care",
			TotalBeds:    ptr(int64(120)),
		},
		Policy: &model.PolicyDetail{
			PolicyNumber: "POL-9",
			ClaimAmount:  ptr(15000.5),
		},
		Bill: &model.BillDetail{
			ApprovedExpenseCompany: ptr(1200.0),
		},
		Investigation: &model.InvestigationNote{
			Findings:   "Bills verified",
			Conclusion: "Genuine",
		},
	}

	tokens := BuildTokens(c, Input{
		Conclusion:     "Claim admissible",
		Recommendation: "Pay",
		OfficerName:    "A. Officer",
		GeneratedAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "CASE-42", tokens["case_id"])
	assert.Equal(t, "in_progress", tokens["case_status"])
	assert.Equal(t, "Jane Doe", tokens["patient_name"])
	assert.Equal(t, "45", tokens["patient_age"])
	assert.Equal(t, "John Doe", tokens["insured_name"])
	assert.Equal(t, "2024-03-04", tokens["admission_date"])
	assert.Equal(t, "", tokens["discharge_date"])
	assert.Equal(t, "120", tokens["total_beds"])
	assert.Equal(t, "", tokens["icu_beds"])
	assert.Equal(t, "15000.50", tokens["claim_amount"])
	assert.Equal(t, "", tokens["sum_insured"])
	assert.Equal(t, "1200.00", tokens["approved_expense_company"])
	assert.Equal(t, "Bills verified", tokens["investigation_findings"])
	assert.Equal(t, "Genuine", tokens["investigation_conclusion"])
	assert.Equal(t, "Dengue", tokens["diagnosis"])
	assert.Equal(t, "Claim admissible", tokens["conclusion"])
	assert.Equal(t, "Pay", tokens["recommendation"])
	assert.Equal(t, "A. Officer", tokens["officer_name"])
	assert.Equal(t, "5/1/2026", tokens["generated_date"])
}

func TestBuildTokens_NoteDiagnosisWins(t *testing.T) {
	c := &model.Case{
		Diagnosis:     "Fever",
		Investigation: &model.InvestigationNote{Diagnosis: "Typhoid"},
	}
	assert.Equal(t, "Typhoid", BuildTokens(c, Input{})["diagnosis"])
}

func TestBuildTokens_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(TokenNames))
	for _, name := range TokenNames {
		assert.False(t, seen[name], "duplicate token %s", name)
		seen[name] = true
	}
}

func TestUnknownTokens(t *testing.T) {
	assert.Nil(t, UnknownTokens([]string{"patient_name", "generated_date"}))
	assert.Equal(t, []string{"surveyor", "grade"}, UnknownTokens([]string{"surveyor", "case_id", "grade"}))
}
