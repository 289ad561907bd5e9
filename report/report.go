// Package report aggregates a classified-transaction set into spend,
// cashback, and hidden-charge totals with a per-category breakdown.
package report

import (
	"sort"

	"github.com/mintbomb27/cc-wrapped/classify"
	"github.com/shopspring/decimal"
)

// Report summarizes one account's transactions. Totals are decimal to
// preserve exact paise; CategorySpend sums are signed (a category dominated
// by refunds can go negative).
type Report struct {
	TotalSpend         decimal.Decimal            `json:"total_spend"`
	TotalCashback      decimal.Decimal            `json:"total_cashback"`
	TotalHiddenCharges decimal.Decimal            `json:"total_hidden_charges"`
	NetSpend           decimal.Decimal            `json:"net_spend"`
	CategorySpend      map[string]decimal.Decimal `json:"category_spend"`
	LargestTransaction *classify.Transaction      `json:"largest_transaction,omitempty"`

	TransactionCount      int `json:"transaction_count"`
	CashbackCount         int `json:"cashback_count"`
	CashbackReversalCount int `json:"cashback_reversal_count"`
	HiddenChargeCount     int `json:"hidden_charge_count"`
	RefundCount           int `json:"refund_count"`
}

// Build computes the report over transactions, processed ascending by date.
// Spend covers transactions that are neither bill-payment, cashback, nor
// hidden-charge; debits add and credits (refunds) subtract. Cashback credits
// add to the cashback total and reversals (cashback-marked debits) subtract
// from it. Hidden charges total by magnitude regardless of direction and
// independently of the other flags. TransactionCount covers debits in the
// spend set only; refunds are counted separately.
func Build(transactions []classify.Transaction) Report {
	ordered := make([]classify.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	r := Report{
		CategorySpend: map[string]decimal.Decimal{},
	}

	var largest *classify.Transaction
	for i := range ordered {
		tx := ordered[i]

		// Hidden charges total independently of how the row is otherwise
		// bucketed: a cashback line carrying a fee marker still counts here.
		if tx.IsHiddenCharge {
			r.TotalHiddenCharges = r.TotalHiddenCharges.Add(tx.Amount)
			r.HiddenChargeCount++
		}

		// Cashback-marked debits are reversals: part of the cashback set
		// even though the flag only covers credits.
		isReversal := !tx.IsCredit && !tx.IsCashback && classify.HasCashbackMarker(tx.Description)

		switch {
		case tx.IsCashback:
			r.TotalCashback = r.TotalCashback.Add(tx.Amount)
			r.CashbackCount++
		case isReversal:
			r.TotalCashback = r.TotalCashback.Sub(tx.Amount)
			r.CashbackReversalCount++
		case tx.IsHiddenCharge, tx.IsBillPayment:
			// Excluded from the spend set.
		case tx.IsCredit:
			r.TotalSpend = r.TotalSpend.Sub(tx.Amount)
			r.CategorySpend[tx.Category] = r.CategorySpend[tx.Category].Sub(tx.Amount)
			r.RefundCount++
		default:
			r.TotalSpend = r.TotalSpend.Add(tx.Amount)
			r.CategorySpend[tx.Category] = r.CategorySpend[tx.Category].Add(tx.Amount)
			r.TransactionCount++
			if largest == nil || tx.Amount.GreaterThan(largest.Amount) {
				largest = &ordered[i]
			}
		}
	}

	r.NetSpend = r.TotalSpend.Sub(r.TotalCashback)
	r.LargestTransaction = largest
	return r
}
