package common

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	nonAmountRegex  = regexp.MustCompile(`[^0-9.-]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// dateLayouts are the supported statement date encodings, day first. Indian
// issuers print day-month-year; month-first (US) layouts are deliberately not
// attempted.
var dateLayouts = []string{
	"02/01/2006", "02-01-2006", "02.01.2006",
	"02/01/06", "02-01-06", "02.01.06",
}

// footerMarkers flag statement boilerplate rows that must never be parsed as
// transactions.
var footerMarkers = []string{
	"END OF STATEMENT",
	"PAYMENT SUMMARY",
	"ACCOUNT SUMMARY",
	"CARD NO:",
	"TOTAL AMOUNT",
	"OPENING BALANCE",
	"CLOSING BALANCE",
	"STATEMENT PERIOD",
}

// ParseAmount parses an amount string into a decimal, stripping currency
// symbols, commas and anything else that is not a digit, dot or minus.
// Unparsable input yields zero, never an error; callers that must tell a zero
// amount apart from garbage pre-validate the string shape.
func ParseAmount(text string) decimal.Decimal {
	clean := nonAmountRegex.ReplaceAllString(text, "")
	if clean == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ParseDate attempts the supported day-first layouts in order, first match
// wins. The second return is false when no layout matches.
func ParseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if dt, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return dt, true
		}
	}
	return time.Time{}, false
}

// CleanDescription collapses embedded newlines and runs of whitespace into
// single spaces and trims the ends. Idempotent.
func CleanDescription(text string) string {
	cleaned := strings.ReplaceAll(text, "\n", " ")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// IsFooterRow reports whether the text is statement boilerplate (balance
// lines, summaries, card-number rows) rather than a transaction.
func IsFooterRow(text string) bool {
	if text == "" {
		return false
	}
	upper := strings.ToUpper(text)
	for _, marker := range footerMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// DetectCreditSuffix parses an amount that may carry a trailing Cr/Dr marker
// or a leading plus sign. A trailing " Cr" or leading "+" marks the amount as
// a credit; " Dr" is stripped; no marker defaults to debit.
func DetectCreditSuffix(text string) (decimal.Decimal, bool) {
	isCredit := false
	text = strings.TrimSpace(text)

	if strings.HasSuffix(text, " Cr") {
		isCredit = true
		text = strings.TrimSpace(strings.TrimSuffix(text, " Cr"))
	} else if strings.HasSuffix(text, " Dr") {
		text = strings.TrimSpace(strings.TrimSuffix(text, " Dr"))
	}

	if strings.HasPrefix(text, "+") {
		isCredit = true
		text = strings.TrimSpace(strings.TrimPrefix(text, "+"))
	}

	return ParseAmount(text), isCredit
}
