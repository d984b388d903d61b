package model

import "github.com/shopspring/decimal"

// Status is the final underwriting outcome for one report.
type Status string

const (
	StatusApprove Status = "APPROVE"
	StatusReject  Status = "REJECT"
)

// RejectReason identifies the gate that terminated evaluation.
type RejectReason string

const (
	ReasonSevereDerogatory    RejectReason = "severe_derogatory"
	ReasonHighDPD             RejectReason = "high_dpd"
	ReasonNoCreditHistory     RejectReason = "no_credit_history"
	ReasonInsufficientVintage RejectReason = "insufficient_vintage"
	ReasonExcessEnquiries     RejectReason = "excess_enquiries"
)

// SevereStatusNone is the SevereStatus value for a clean report.
const SevereStatusNone = "none"

// DecisionResult is the engine's output for one report. SanctionLimit is
// zero and RejectReason is set iff Status is REJECT.
type DecisionResult struct {
	FileName         string
	Status           Status
	RejectReason     RejectReason
	SanctionLimit    decimal.Decimal
	ActiveCreditCard bool
	LatestDPD        int
	SevereStatus     string
}
