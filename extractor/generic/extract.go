// Package generic is the fallback header-based strategy for statement
// layouts no issuer-specific strategy claims. Columns are resolved from a
// small synonym table; no credit/debit detection is attempted and no
// merged-cell reconstruction is performed.
package generic

import (
	"strings"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Date   []string
	Desc   []string
	Amount []string
}

func loadConfig() config {
	return config{
		Date:   viper.GetStringSlice("statement.STANDARD.headers.date"),
		Desc:   viper.GetStringSlice("statement.STANDARD.headers.description"),
		Amount: viper.GetStringSlice("statement.STANDARD.headers.amount"),
	}
}

type Strategy struct{}

func New() *Strategy {
	return &Strategy{}
}

func (s *Strategy) Name() string {
	return "standard"
}

func matchesAny(header string, synonyms []string) bool {
	for _, syn := range synonyms {
		if strings.Contains(header, syn) {
			return true
		}
	}
	return false
}

func columnIndices(cfg config, headers common.Row) (dateIdx, descIdx, amtIdx int) {
	dateIdx, descIdx, amtIdx = -1, -1, -1
	for i, c := range headers {
		h := strings.ToLower(common.CellText(c))
		if h == "" {
			continue
		}
		if matchesAny(h, cfg.Date) && dateIdx == -1 {
			dateIdx = i
		}
		if matchesAny(h, cfg.Desc) && descIdx == -1 {
			descIdx = i
		}
		if matchesAny(h, cfg.Amount) && amtIdx == -1 {
			amtIdx = i
		}
	}
	return dateIdx, descIdx, amtIdx
}

// CanHandle requires a synonym match for each of date, description and
// amount in the header row.
func (s *Strategy) CanHandle(table common.Table) bool {
	if len(table) == 0 || len(table[0]) == 0 {
		return false
	}

	dateIdx, descIdx, amtIdx := columnIndices(loadConfig(), table[0])
	return dateIdx != -1 && descIdx != -1 && amtIdx != -1
}

// Extract walks the data rows, requiring all three resolved columns to be
// present and populated. Every extracted row defaults to debit.
func (s *Strategy) Extract(table common.Table) []common.RawTransaction {
	transactions := []common.RawTransaction{}
	if len(table) < 2 {
		return transactions
	}

	dateIdx, descIdx, amtIdx := columnIndices(loadConfig(), table[0])
	if dateIdx == -1 || descIdx == -1 || amtIdx == -1 {
		return transactions
	}

	maxIdx := dateIdx
	if descIdx > maxIdx {
		maxIdx = descIdx
	}
	if amtIdx > maxIdx {
		maxIdx = amtIdx
	}

	for _, row := range table[1:] {
		if len(row) <= maxIdx {
			continue
		}

		dateStr := common.CellText(row[dateIdx])
		desc := common.CellText(row[descIdx])
		amtStr := common.CellText(row[amtIdx])

		if dateStr == "" || desc == "" || amtStr == "" {
			continue
		}

		date, ok := common.ParseDate(dateStr)
		if !ok {
			continue
		}

		transactions = append(transactions, common.RawTransaction{
			Date:        date,
			Description: common.CleanDescription(desc),
			Amount:      common.ParseAmount(amtStr),
			Currency:    common.HomeCurrency,
			IsCredit:    false,
		})
	}

	return transactions
}
