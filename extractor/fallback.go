package extractor

import (
	"strings"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
)

// ScanText is the last-resort extractor for statements with no usable table
// structure. It scans page text line by line with a permissive heuristic and
// accepts a materially higher error rate than the table strategies: a line
// qualifies when it contains a DD/MM/YYYY date and more than three
// whitespace-separated tokens, and its final token has an amount shape.
// Everything between the date and the amount becomes the description. All
// records are debit, uncategorized.
func ScanText(text string) []common.RawTransaction {
	transactions := []common.RawTransaction{}

	for _, line := range strings.Split(text, "\n") {
		dateStr := fallbackDateRegex.FindString(line)
		if dateStr == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) <= 3 {
			continue
		}

		amountPart := parts[len(parts)-1]
		if !fallbackAmountRegex.MatchString(amountPart) {
			continue
		}

		amount := common.ParseAmount(amountPart)
		if amount.IsZero() {
			continue
		}

		descStart := strings.Index(line, dateStr) + len(dateStr)
		descEnd := strings.LastIndex(line, amountPart)
		if descEnd <= descStart {
			continue
		}

		date, ok := common.ParseDate(dateStr)
		if !ok {
			continue
		}

		transactions = append(transactions, common.RawTransaction{
			Date:        date,
			Description: common.CleanDescription(line[descStart:descEnd]),
			Amount:      amount,
			Currency:    common.HomeCurrency,
			IsCredit:    false,
		})
	}

	return transactions
}
