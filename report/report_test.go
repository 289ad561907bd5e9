package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/mintbomb27/cc-wrapped/classify"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const testConfigYAML = `
classifier:
  markers:
    bill_payment: ['NETBANKING TRANSFER']
    cashback: ['CASHBACK']
    hidden_charge: ['GST']
`

func setupTestConfig() {
	viper.Reset()
	viper.SetConfigType("yaml")
	viper.ReadConfig(bytes.NewBufferString(testConfigYAML))
}

func tx(day int, description, amount, category string, isCredit bool) classify.Transaction {
	return classify.Transaction{
		Date:        time.Date(2024, 2, day, 0, 0, 0, 0, time.Local),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Currency:    "INR",
		Category:    category,
		IsCredit:    isCredit,
	}
}

func TestBuild_BasicTotals(t *testing.T) {
	setupTestConfig()

	cashback := tx(2, "CASHBACK FEB", "10", "Uncategorized", true)
	cashback.IsCashback = true
	hidden := tx(3, "GST CHARGE", "5", classify.CategoryHiddenCharges, false)
	hidden.IsHiddenCharge = true

	r := Build([]classify.Transaction{
		tx(1, "MERCHANT ONE", "100", "A", false),
		cashback,
		hidden,
	})

	if r.TotalSpend.String() != "100" {
		t.Errorf("Expected total spend 100, got %s", r.TotalSpend)
	}
	if r.TotalCashback.String() != "10" {
		t.Errorf("Expected total cashback 10, got %s", r.TotalCashback)
	}
	if r.TotalHiddenCharges.String() != "5" {
		t.Errorf("Expected total hidden charges 5, got %s", r.TotalHiddenCharges)
	}
	if r.NetSpend.String() != "90" {
		t.Errorf("Expected net spend 90, got %s", r.NetSpend)
	}
	if len(r.CategorySpend) != 1 || r.CategorySpend["A"].String() != "100" {
		t.Errorf("Expected category spend {A: 100}, got %v", r.CategorySpend)
	}
	if r.TransactionCount != 1 || r.CashbackCount != 1 || r.HiddenChargeCount != 1 {
		t.Errorf("Unexpected counts: %+v", r)
	}
}

func TestBuild_RefundsSubtract(t *testing.T) {
	setupTestConfig()

	r := Build([]classify.Transaction{
		tx(1, "MERCHANT", "100", "Shopping", false),
		tx(2, "MERCHANT REFUND", "40", "Shopping", true),
	})

	if r.TotalSpend.String() != "60" {
		t.Errorf("Expected total spend 60, got %s", r.TotalSpend)
	}
	if r.CategorySpend["Shopping"].String() != "60" {
		t.Errorf("Expected Shopping spend 60, got %s", r.CategorySpend["Shopping"])
	}
	if r.RefundCount != 1 {
		t.Errorf("Expected 1 refund, got %d", r.RefundCount)
	}
	// Refunds are tracked by RefundCount only; the transaction count covers
	// debits in the spend set.
	if r.TransactionCount != 1 {
		t.Errorf("Expected 1 spend transaction, got %d", r.TransactionCount)
	}

	// A category can go negative when refunds outweigh spend.
	r = Build([]classify.Transaction{
		tx(1, "BIG REFUND", "100", "Travel", true),
	})
	if r.CategorySpend["Travel"].String() != "-100" {
		t.Errorf("Expected Travel spend -100, got %s", r.CategorySpend["Travel"])
	}
}

func TestBuild_CashbackReversalSubtracts(t *testing.T) {
	setupTestConfig()

	cashback := tx(1, "CASHBACK JAN", "25", "Uncategorized", true)
	cashback.IsCashback = true

	r := Build([]classify.Transaction{
		cashback,
		// Reversal: cashback-marked debit, not flagged by the classifier.
		tx(2, "CASHBACK REVERSAL", "10", "Uncategorized", false),
	})

	if r.TotalCashback.String() != "15" {
		t.Errorf("Expected total cashback 15, got %s", r.TotalCashback)
	}
	if r.CashbackCount != 1 || r.CashbackReversalCount != 1 {
		t.Errorf("Unexpected cashback counts: %+v", r)
	}
	if r.TransactionCount != 0 {
		t.Errorf("Expected reversal excluded from spend, got %d spend transactions", r.TransactionCount)
	}
}

func TestBuild_HiddenChargeCountsIndependently(t *testing.T) {
	setupTestConfig()

	// A cashback credit that also carries a fee marker belongs to the
	// cashback set AND the hidden-charge total.
	both := tx(1, "CASHBACK GST ADJUSTMENT", "5", classify.CategoryHiddenCharges, true)
	both.IsCashback = true
	both.IsHiddenCharge = true

	r := Build([]classify.Transaction{both})

	if r.TotalCashback.String() != "5" || r.CashbackCount != 1 {
		t.Errorf("Expected cashback total 5 (count 1), got %s (%d)", r.TotalCashback, r.CashbackCount)
	}
	if r.TotalHiddenCharges.String() != "5" {
		t.Errorf("Expected hidden charges total 5, got %s", r.TotalHiddenCharges)
	}
	if r.HiddenChargeCount != 1 {
		t.Errorf("Expected 1 hidden charge, got %d", r.HiddenChargeCount)
	}
	if !r.TotalSpend.IsZero() || r.TransactionCount != 0 {
		t.Errorf("Expected flagged row excluded from spend, got %+v", r)
	}
}

func TestBuild_BillPaymentExcluded(t *testing.T) {
	setupTestConfig()

	payment := tx(1, "NETBANKING TRANSFER", "5000", "Uncategorized", true)
	payment.IsBillPayment = true

	r := Build([]classify.Transaction{
		payment,
		tx(2, "MERCHANT", "100", "A", false),
	})

	if r.TotalSpend.String() != "100" {
		t.Errorf("Expected bill payment excluded from spend, got %s", r.TotalSpend)
	}
	if r.TransactionCount != 1 {
		t.Errorf("Expected 1 spend transaction, got %d", r.TransactionCount)
	}
}

func TestBuild_LargestTransaction(t *testing.T) {
	setupTestConfig()

	r := Build([]classify.Transaction{
		tx(1, "SMALL", "10", "A", false),
		tx(2, "BIG", "500", "A", false),
		tx(3, "HUGE REFUND", "9999", "A", true),
	})

	if r.LargestTransaction == nil || r.LargestTransaction.Description != "BIG" {
		t.Errorf("Expected largest debit 'BIG', got %+v", r.LargestTransaction)
	}
}

func TestBuild_Empty(t *testing.T) {
	setupTestConfig()

	r := Build(nil)

	if !r.TotalSpend.IsZero() || !r.NetSpend.IsZero() {
		t.Errorf("Expected zero totals, got %+v", r)
	}
	if r.LargestTransaction != nil {
		t.Errorf("Expected no largest transaction, got %+v", r.LargestTransaction)
	}
	if len(r.CategorySpend) != 0 {
		t.Errorf("Expected empty category spend, got %v", r.CategorySpend)
	}
}

func TestBuild_InputOrderIrrelevant(t *testing.T) {
	setupTestConfig()

	a := []classify.Transaction{
		tx(2, "SECOND", "100", "A", false),
		tx(1, "FIRST", "50", "B", false),
	}
	b := []classify.Transaction{a[1], a[0]}

	ra, rb := Build(a), Build(b)
	if !ra.TotalSpend.Equal(rb.TotalSpend) || ra.TransactionCount != rb.TransactionCount {
		t.Error("Expected report independent of input order")
	}
}
