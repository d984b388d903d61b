// Package engine applies the underwriting rules to a normalized credit
// report and produces the approve/reject decision.
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anivratgoel/carepal-id-bre/internal/classify"
	"github.com/anivratgoel/carepal-id-bre/internal/config"
	"github.com/anivratgoel/carepal-id-bre/internal/metrics"
	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

// Engine evaluates credit reports against a fixed policy. It holds no
// per-report state, so one Engine may evaluate any number of reports,
// concurrently if the caller wants.
type Engine struct {
	policy     config.Policy
	classifier *classify.Classifier
	severe     *classify.Matcher

	securedWeight   decimal.Decimal
	unsecuredWeight decimal.Decimal
	limitFloor      decimal.Decimal
	limitCeiling    decimal.Decimal
}

// New creates an Engine with the default classification tables. The policy
// is validated here; an invalid policy is a configuration fault, not a
// per-report condition.
func New(policy config.Policy) (*Engine, error) {
	return NewWithTables(policy, classify.DefaultClassifier(), classify.DefaultMatcher())
}

// NewWithTables creates an Engine with injected classification tables.
func NewWithTables(policy config.Policy, classifier *classify.Classifier, severe *classify.Matcher) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	return &Engine{
		policy:          policy,
		classifier:      classifier,
		severe:          severe,
		securedWeight:   decimal.NewFromFloat(policy.SecuredWeight),
		unsecuredWeight: decimal.NewFromFloat(policy.UnsecuredWeight),
		limitFloor:      decimal.NewFromFloat(policy.LimitFloor),
		limitCeiling:    decimal.NewFromFloat(policy.LimitCeiling),
	}, nil
}

// gate is one ordered rule in the pipeline: if fails returns true,
// evaluation stops with the gate's reason.
type gate struct {
	reason model.RejectReason
	fails  func(m metrics.Metrics, p config.Policy) bool
}

// gates run in this order; the first failure wins, so severe derogatory
// status dominates every later rule.
var gates = []gate{
	{
		reason: model.ReasonSevereDerogatory,
		fails: func(m metrics.Metrics, p config.Policy) bool {
			return m.SevereStatus != model.SevereStatusNone
		},
	},
	{
		reason: model.ReasonHighDPD,
		fails: func(m metrics.Metrics, p config.Policy) bool {
			return m.LatestDPD > p.MaxDPD
		},
	},
	{
		reason: model.ReasonNoCreditHistory,
		fails: func(m metrics.Metrics, p config.Policy) bool {
			return !m.VintageKnown
		},
	},
	{
		reason: model.ReasonInsufficientVintage,
		fails: func(m metrics.Metrics, p config.Policy) bool {
			return m.VintageMonths < p.MinVintageMonths
		},
	},
	{
		reason: model.ReasonExcessEnquiries,
		fails: func(m metrics.Metrics, p config.Policy) bool {
			return m.EnquiryCount > p.MaxEnquiries
		},
	},
}

// Evaluate runs the gate pipeline over one report. asOf anchors every
// time-relative rule, so identical inputs always produce an identical
// decision.
func (e *Engine) Evaluate(r *model.CreditReport, asOf time.Time) model.DecisionResult {
	m := metrics.Compute(r, asOf, e.classifier, e.severe, e.policy.EnquiryWindowMonths)

	result := model.DecisionResult{
		FileName:         r.FileName,
		ActiveCreditCard: m.ActiveCreditCard,
		LatestDPD:        m.LatestDPD,
		SevereStatus:     m.SevereStatus,
	}

	for _, g := range gates {
		if g.fails(m, e.policy) {
			result.Status = model.StatusReject
			result.RejectReason = g.reason
			result.SanctionLimit = decimal.Zero
			return result
		}
	}

	result.Status = model.StatusApprove
	result.SanctionLimit = e.sanctionLimit(m)
	return result
}

// sanctionLimit computes the approved loan amount from category-weighted
// exposure, clamped to [limit_floor, limit_ceiling].
func (e *Engine) sanctionLimit(m metrics.Metrics) decimal.Decimal {
	limit := m.SecuredExposure.Mul(e.securedWeight).
		Add(m.UnsecuredExposure.Mul(e.unsecuredWeight))

	if limit.LessThan(e.limitFloor) {
		limit = e.limitFloor
	}
	if limit.GreaterThan(e.limitCeiling) {
		limit = e.limitCeiling
	}
	return limit
}
