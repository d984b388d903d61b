package model

import "time"

// Snapshot returns a copy of the report as it would have looked on cutoff:
// accounts opened after the cutoff are dropped, DPD history after the cutoff
// month is truncated (the cutoff month itself is kept), and AsOf moves to
// the cutoff so trailing-window rules anchor on it. The receiver is not
// modified.
func (r *CreditReport) Snapshot(cutoff time.Time) *CreditReport {
	out := &CreditReport{
		FileName:  r.FileName,
		Applicant: r.Applicant,
		AsOf:      cutoff,
		Cutoff:    r.Cutoff,
	}

	monthStart := time.Date(cutoff.Year(), cutoff.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, acc := range r.Accounts {
		if !acc.OpenDate.IsZero() && acc.OpenDate.After(cutoff) {
			continue
		}
		kept := acc
		kept.DPDHistory = nil
		for _, e := range acc.DPDHistory {
			if e.Period.IsZero() || !e.Period.After(monthStart) {
				kept.DPDHistory = append(kept.DPDHistory, e)
			}
		}
		out.Accounts = append(out.Accounts, kept)
	}

	for _, enq := range r.Enquiries {
		if !enq.Date.IsZero() && enq.Date.After(cutoff) {
			continue
		}
		out.Enquiries = append(out.Enquiries, enq)
	}

	return out
}
