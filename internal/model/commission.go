package model

import "time"

// CommissionType is how a commission amount was arrived at.
type CommissionType string

const (
	CommissionFixed      CommissionType = "fixed"
	CommissionPercentage CommissionType = "percentage"
	CommissionCustom     CommissionType = "custom"
)

func (t CommissionType) Valid() bool {
	switch t {
	case CommissionFixed, CommissionPercentage, CommissionCustom:
		return true
	}
	return false
}

// CommissionStatus tracks whether a commission has been settled.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

func (s CommissionStatus) Valid() bool {
	return s == CommissionPending || s == CommissionPaid
}

// Commission is the single commission record of a case.
type Commission struct {
	ID        int64            `json:"id"`
	CaseID    int64            `json:"case_id"`
	Type      CommissionType   `json:"commission_type"`
	Amount    float64          `json:"amount"`
	Notes     string           `json:"notes"`
	Status    CommissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
