// Package classify turns raw extracted records into classified transactions:
// the three semantic flags plus the final resolved category.
package classify

import (
	"strings"
	"time"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Transaction is the persisted and reported unit. Amount stays a non-negative
// magnitude; direction and semantics live in the flags. Immutable after
// classification.
type Transaction struct {
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Category       string          `json:"category"`
	IsCredit       bool            `json:"is_credit"`
	IsBillPayment  bool            `json:"is_bill_payment"`
	IsCashback     bool            `json:"is_cashback"`
	IsHiddenCharge bool            `json:"is_hidden_charge"`
}

const (
	// CategoryHiddenCharges overrides any issuer-supplied category.
	CategoryHiddenCharges = "Hidden Charges"
	// CategoryUncategorized is the sentinel when nothing else resolves.
	CategoryUncategorized = "Uncategorized"
)

type markers struct {
	BillPayment  []string
	Cashback     []string
	HiddenCharge []string
}

func loadMarkers() markers {
	return markers{
		BillPayment:  viper.GetStringSlice("classifier.markers.bill_payment"),
		Cashback:     viper.GetStringSlice("classifier.markers.cashback"),
		HiddenCharge: viper.GetStringSlice("classifier.markers.hidden_charge"),
	}
}

// Predictor supplies a category for a description when the statement did not
// label the transaction. Implementations must never fail; they return the
// sentinel instead.
type Predictor interface {
	Predict(description string) string
}

// HasCashbackMarker reports whether a description carries a cashback marker,
// independent of direction. The report uses it to recognize cashback
// reversals, which the IsCashback flag deliberately excludes.
func HasCashbackMarker(description string) bool {
	return containsAny(strings.ToUpper(description), loadMarkers().Cashback)
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// Classify tags one raw record. Marker matching is case-insensitive against
// the configured lists. Bill-payment markers apply regardless of direction
// (the statement phrasing alone identifies a balance repayment); cashback
// requires the transaction to be a credit — a cashback-labeled debit is a
// reversal and is handled by the report, not flagged here. The flags are
// independent; no step suppresses another. Category priority: hidden-charge
// override, then issuer-supplied, then predictor.
func Classify(raw common.RawTransaction, predictor Predictor) Transaction {
	m := loadMarkers()
	upper := strings.ToUpper(raw.Description)

	isBillPayment := containsAny(upper, m.BillPayment)
	isCashback := containsAny(upper, m.Cashback) && raw.IsCredit
	isHiddenCharge := containsAny(upper, m.HiddenCharge)

	var category string
	switch {
	case isHiddenCharge:
		category = CategoryHiddenCharges
	case raw.Category != "":
		category = raw.Category
	case predictor != nil:
		category = predictor.Predict(raw.Description)
	}
	if category == "" {
		category = CategoryUncategorized
	}

	return Transaction{
		Date:           raw.Date,
		Description:    raw.Description,
		Amount:         raw.Amount,
		Currency:       raw.Currency,
		Category:       category,
		IsCredit:       raw.IsCredit,
		IsBillPayment:  isBillPayment,
		IsCashback:     isCashback,
		IsHiddenCharge: isHiddenCharge,
	}
}

// All classifies a full extraction result in order.
func All(raws []common.RawTransaction, predictor Predictor) []Transaction {
	transactions := make([]Transaction, 0, len(raws))
	for _, raw := range raws {
		transactions = append(transactions, Classify(raw, predictor))
	}
	return transactions
}
