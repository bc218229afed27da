package entity

import "time"

// ReconciliationReport summarises one pass of the reconciliation job
type ReconciliationReport struct {
	StartedAt            time.Time
	FinishedAt           time.Time
	InvoicesChecked      int
	InvoicesSettled      int
	InvoicesFailed       int
	ChallengesChecked    int
	ChallengesSettled    int
	WithdrawalsChecked   int
	WithdrawalsSettled   int
	WithdrawalsFailed    int
	StrandedAcceptDebits []int64 // challenge IDs still waiting although the acceptor was debited
	Errors               []string
}

// AddError records a non-fatal failure seen during the pass
func (r *ReconciliationReport) AddError(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err.Error())
}

// Clean reports whether the pass found nothing needing attention
func (r *ReconciliationReport) Clean() bool {
	return len(r.Errors) == 0 && len(r.StrandedAcceptDebits) == 0
}

// LogFields flattens the report for structured logging
func (r *ReconciliationReport) LogFields() map[string]any {
	return map[string]any{
		"invoicesChecked":      r.InvoicesChecked,
		"invoicesSettled":      r.InvoicesSettled,
		"invoicesFailed":       r.InvoicesFailed,
		"challengesChecked":    r.ChallengesChecked,
		"challengesSettled":    r.ChallengesSettled,
		"withdrawalsChecked":   r.WithdrawalsChecked,
		"withdrawalsSettled":   r.WithdrawalsSettled,
		"withdrawalsFailed":    r.WithdrawalsFailed,
		"strandedAcceptDebits": r.StrandedAcceptDebits,
		"errors":               len(r.Errors),
		"duration":             r.FinishedAt.Sub(r.StartedAt).String(),
	}
}
