package common

import (
	"testing"
	"time"
)

func TestParseAmount_SimpleNumber(t *testing.T) {
	result := ParseAmount("123.45")
	if result.String() != "123.45" {
		t.Errorf("Expected '123.45', got '%s'", result.String())
	}
}

func TestParseAmount_WithCommas(t *testing.T) {
	result := ParseAmount("1,234.56")
	if result.String() != "1234.56" {
		t.Errorf("Expected '1234.56', got '%s'", result.String())
	}
}

func TestParseAmount_WithCurrencySymbol(t *testing.T) {
	result := ParseAmount("₹1,234.56")
	if result.String() != "1234.56" {
		t.Errorf("Expected '1234.56', got '%s'", result.String())
	}
}

func TestParseAmount_RupeePrefix(t *testing.T) {
	result := ParseAmount("Rs 500")
	if result.String() != "500" {
		t.Errorf("Expected '500', got '%s'", result.String())
	}

	// The dot in "Rs." survives stripping, so the value parses as 0.5. This
	// is the documented silent-data-loss edge of lenient amount parsing;
	// pinned here so a behavior change is deliberate.
	result = ParseAmount("Rs. 500")
	if result.String() != "0.5" {
		t.Errorf("Expected '0.5', got '%s'", result.String())
	}
}

func TestParseAmount_EmptyString(t *testing.T) {
	result := ParseAmount("")
	if !result.IsZero() {
		t.Errorf("Expected zero, got '%s'", result.String())
	}
}

func TestParseAmount_UnparsableYieldsZero(t *testing.T) {
	// ParseAmount is total: garbage yields zero, never an error. This is a
	// documented source of silent data loss worth pinning down.
	for _, input := range []string{"ABC", "1.2.3", "..", "Dr", "--", "₹₹₹"} {
		result := ParseAmount(input)
		if !result.IsZero() {
			t.Errorf("ParseAmount(%q) = %s, expected zero", input, result.String())
		}
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	// Formatting a fixed date in every supported layout and parsing it back
	// must return the original date.
	fixed := time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local)
	layouts := []string{
		"02/01/2006", "02-01-2006", "02.01.2006",
		"02/01/06", "02-01-06", "02.01.06",
	}

	for _, layout := range layouts {
		formatted := fixed.Format(layout)
		parsed, ok := ParseDate(formatted)
		if !ok {
			t.Errorf("ParseDate(%q) failed for layout %q", formatted, layout)
			continue
		}
		if !parsed.Equal(fixed) {
			t.Errorf("ParseDate(%q) = %v, expected %v", formatted, parsed, fixed)
		}
	}
}

func TestParseDate_TwoDigitYear(t *testing.T) {
	parsed, ok := ParseDate("01-01-24")
	if !ok {
		t.Fatal("Expected two-digit year to parse")
	}
	if parsed.Year() != 2024 || parsed.Month() != 1 || parsed.Day() != 1 {
		t.Errorf("Expected 2024-01-01, got %v", parsed)
	}
}

func TestParseDate_MonthFirstRejected(t *testing.T) {
	// 13 as a month is impossible, so a US-style date must not parse.
	if _, ok := ParseDate("12/13/2023"); ok {
		t.Error("Expected month-first date to be rejected")
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2023/12/31", "31 Dec 2023"} {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) unexpectedly succeeded", input)
		}
	}
}

func TestCleanDescription_Newlines(t *testing.T) {
	result := CleanDescription("AMAZON\n  PAYMENT  ")
	if result != "AMAZON PAYMENT" {
		t.Errorf("Expected 'AMAZON PAYMENT', got '%s'", result)
	}
}

func TestCleanDescription_Idempotent(t *testing.T) {
	inputs := []string{
		"AMAZON\n  PAYMENT  ",
		"  SWIGGY   ORDER ",
		"",
		"SINGLE",
		"A \n B \n C",
	}
	for _, input := range inputs {
		once := CleanDescription(input)
		twice := CleanDescription(once)
		if once != twice {
			t.Errorf("CleanDescription not idempotent for %q: %q != %q", input, once, twice)
		}
		if len(once) > len(input) {
			t.Errorf("CleanDescription grew input %q to %q", input, once)
		}
	}
}

func TestIsFooterRow(t *testing.T) {
	footers := []string{
		"END OF STATEMENT",
		"Payment Summary",
		"card no: 1234",
		"OPENING BALANCE 1,000.00",
	}
	for _, text := range footers {
		if !IsFooterRow(text) {
			t.Errorf("Expected %q to be a footer row", text)
		}
	}

	if IsFooterRow("Regular transaction") {
		t.Error("Expected regular text not to be a footer row")
	}
	if IsFooterRow("") {
		t.Error("Expected empty text not to be a footer row")
	}
}

func TestDetectCreditSuffix_Credit(t *testing.T) {
	amount, isCredit := DetectCreditSuffix("1,000.00 Cr")
	if amount.String() != "1000" {
		t.Errorf("Expected amount '1000', got '%s'", amount.String())
	}
	if !isCredit {
		t.Error("Expected credit")
	}
}

func TestDetectCreditSuffix_Debit(t *testing.T) {
	amount, isCredit := DetectCreditSuffix("500.00 Dr")
	if amount.String() != "500" {
		t.Errorf("Expected amount '500', got '%s'", amount.String())
	}
	if isCredit {
		t.Error("Expected debit")
	}
}

func TestDetectCreditSuffix_PlusPrefix(t *testing.T) {
	amount, isCredit := DetectCreditSuffix("+250.00")
	if amount.String() != "250" {
		t.Errorf("Expected amount '250', got '%s'", amount.String())
	}
	if !isCredit {
		t.Error("Expected leading plus to mark credit")
	}
}

func TestDetectCreditSuffix_NoMarkerDefaultsToDebit(t *testing.T) {
	amount, isCredit := DetectCreditSuffix("250.00")
	if amount.String() != "250" {
		t.Errorf("Expected amount '250', got '%s'", amount.String())
	}
	if isCredit {
		t.Error("Expected no marker to default to debit")
	}
}

func TestRowText_SkipsMergedCells(t *testing.T) {
	row := Cells("01/02/2024", "", "AMAZON", "", "100.00")
	if got := RowText(row); got != "01/02/2024 AMAZON 100.00" {
		t.Errorf("Unexpected row text: %q", got)
	}
}
