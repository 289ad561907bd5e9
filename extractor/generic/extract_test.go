package generic

import (
	"bytes"
	"testing"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/spf13/viper"
)

const testConfigYAML = `
statement:
  STANDARD:
    headers:
      date: ['date', 'transaction date', 'posting date']
      description: ['description', 'details', 'particulars']
      amount: ['amount', 'debit', 'amt']
`

func setupTestConfig() {
	viper.Reset()
	viper.SetConfigType("yaml")
	viper.ReadConfig(bytes.NewBufferString(testConfigYAML))
}

func TestCanHandle_Synonyms(t *testing.T) {
	setupTestConfig()

	tables := []common.Table{
		{common.Cells("Date", "Description", "Amount")},
		{common.Cells("Posting Date", "Particulars", "Debit")},
		{common.Cells("Transaction Date", "Details", "Amt")},
	}

	for i, table := range tables {
		if !New().CanHandle(table) {
			t.Errorf("Expected header set %d to be handled", i)
		}
	}
}

func TestCanHandle_MissingColumn(t *testing.T) {
	setupTestConfig()

	if New().CanHandle(common.Table{common.Cells("Date", "Description")}) {
		t.Error("Expected headers without amount to be rejected")
	}
	if New().CanHandle(common.Table{}) {
		t.Error("Expected empty table to be rejected")
	}
}

func TestExtract_DefaultsToDebit(t *testing.T) {
	setupTestConfig()
	table := common.Table{
		common.Cells("Date", "Particulars", "Amount"),
		common.Cells("15/01/2024", "LOCAL STORE", "499.00"),
	}

	transactions := New().Extract(table)

	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].IsCredit {
		t.Error("Expected generic extraction to default to debit")
	}
	if transactions[0].Amount.String() != "499" {
		t.Errorf("Expected amount '499', got '%s'", transactions[0].Amount.String())
	}
	if transactions[0].Category != "" {
		t.Errorf("Expected no category, got '%s'", transactions[0].Category)
	}
}

func TestExtract_SkipsShortAndIncompleteRows(t *testing.T) {
	setupTestConfig()
	table := common.Table{
		common.Cells("Date", "Description", "Amount"),
		common.Cells("15/01/2024"),
		common.Cells("", "NO DATE", "100.00"),
		common.Cells("not a date", "BAD DATE", "100.00"),
		common.Cells("16/01/2024", "GOOD ROW", "250.00"),
	}

	transactions := New().Extract(table)

	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Description != "GOOD ROW" {
		t.Errorf("Expected 'GOOD ROW', got '%s'", transactions[0].Description)
	}
}
