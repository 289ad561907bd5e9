// Package hdfc extracts transactions from HDFC Bank credit card statements.
// HDFC tables arrive as single-column merged rows in the shape
// "DATE| TIME DESCRIPTION AMOUNT".
package hdfc

import (
	"regexp"
	"strings"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Prefix      *regexp.Regexp
	Transaction *regexp.Regexp
}

func loadConfig() config {
	return config{
		Prefix:      regexp.MustCompile(viper.GetString("statement.HDFC.patterns.prefix")),
		Transaction: regexp.MustCompile(viper.GetString("statement.HDFC.patterns.transaction")),
	}
}

type Strategy struct{}

func New() *Strategy {
	return &Strategy{}
}

func (s *Strategy) Name() string {
	return "hdfc"
}

// CanHandle reports true for single-column tables where one of the first five
// rows carries the "DD/MM/YYYY | HH:MM" prefix.
func (s *Strategy) CanHandle(table common.Table) bool {
	if len(table) == 0 {
		return false
	}

	for _, row := range table {
		if len(row) != 1 {
			return false
		}
	}

	cfg := loadConfig()
	for i, row := range table {
		if i >= 5 {
			break
		}
		if cfg.Prefix.MatchString(common.CellText(row[0])) {
			return true
		}
	}

	return false
}

// Extract applies the transaction capture pattern to every row. The time
// group is discarded. A trailing "+ C" on the description marks the row as a
// credit; a bare " C" is stripped without changing direction. Rows that do
// not match, or whose date fails to parse, are skipped.
func (s *Strategy) Extract(table common.Table) []common.RawTransaction {
	cfg := loadConfig()
	transactions := []common.RawTransaction{}

	for _, row := range table {
		if len(row) != 1 {
			continue
		}
		line := strings.ReplaceAll(common.CellText(row[0]), "\n", " ")

		match := cfg.Transaction.FindStringSubmatch(line)
		if len(match) == 0 {
			continue
		}

		desc := strings.TrimSpace(match[3])
		isCredit := false
		if strings.HasSuffix(desc, "+ C") {
			isCredit = true
			desc = strings.TrimSpace(strings.TrimSuffix(desc, "+ C"))
		} else if strings.HasSuffix(desc, " C") {
			desc = strings.TrimSpace(strings.TrimSuffix(desc, " C"))
		}

		date, ok := common.ParseDate(match[1])
		if !ok {
			continue
		}

		transactions = append(transactions, common.RawTransaction{
			Date:        date,
			Description: common.CleanDescription(desc),
			Amount:      common.ParseAmount(match[4]),
			Currency:    common.HomeCurrency,
			IsCredit:    isCredit,
		})
	}

	return transactions
}
