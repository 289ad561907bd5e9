// Package axis extracts transactions from Axis Bank credit card statements:
// multi-column tables headed by DATE / TRANSACTION DETAILS / MERCHANT
// CATEGORY / AMOUNT. Merged cells may shift the header row down and split one
// logical description across several physical cells.
package axis

import (
	"strings"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	Banner   string
	Date     string
	Desc     string
	Category string
	Amount   string
}

func loadConfig() config {
	return config{
		Banner:   viper.GetString("statement.AXIS.headers.banner"),
		Date:     viper.GetString("statement.AXIS.headers.date"),
		Desc:     viper.GetString("statement.AXIS.headers.description"),
		Category: viper.GetString("statement.AXIS.headers.category"),
		Amount:   viper.GetString("statement.AXIS.headers.amount"),
	}
}

type Strategy struct{}

func New() *Strategy {
	return &Strategy{}
}

func (s *Strategy) Name() string {
	return "axis"
}

// headerRow returns the row holding the column headers: row 0, or row 1 when
// row 0 is the payment-summary banner.
func headerRow(cfg config, table common.Table) common.Row {
	headers := table[0]
	if len(headers) > 0 && strings.Contains(strings.ToUpper(common.CellText(headers[0])), cfg.Banner) && len(table) > 1 {
		headers = table[1]
	}
	return headers
}

func upperHeaders(row common.Row) []string {
	headers := make([]string, len(row))
	for i, c := range row {
		headers[i] = strings.ToUpper(common.CellText(c))
	}
	return headers
}

// CanHandle requires the header row to carry date, transaction and amount
// tokens. Must not fail on malformed input.
func (s *Strategy) CanHandle(table common.Table) bool {
	if len(table) < 2 || len(table[0]) == 0 {
		return false
	}

	cfg := loadConfig()
	headers := upperHeaders(headerRow(cfg, table))

	hasDate, hasTransaction, hasAmount := false, false, false
	for _, h := range headers {
		if strings.Contains(h, cfg.Date) {
			hasDate = true
		}
		if strings.Contains(h, cfg.Desc) {
			hasTransaction = true
		}
		if strings.Contains(h, cfg.Amount) {
			hasAmount = true
		}
	}

	return hasDate && hasTransaction && hasAmount
}

// Extract resolves column indices by first occurrence of each header token,
// then walks the data rows. The description is reconstructed by joining every
// non-empty cell between the description column and the next populated column
// (merchant category when present, amount otherwise), which re-assembles
// descriptions split by merged cells. Footer rows, rows missing a required
// field and rows whose amount parses to zero are skipped, not failed.
func (s *Strategy) Extract(table common.Table) []common.RawTransaction {
	transactions := []common.RawTransaction{}
	if len(table) < 2 {
		return transactions
	}

	cfg := loadConfig()
	headers := upperHeaders(headerRow(cfg, table))

	dateIdx, descIdx, categoryIdx, amtIdx := -1, -1, -1, -1
	for i, h := range headers {
		if strings.Contains(h, cfg.Date) && dateIdx == -1 {
			dateIdx = i
		}
		if strings.Contains(h, cfg.Desc) && descIdx == -1 {
			descIdx = i
		}
		if strings.Contains(h, cfg.Category) && categoryIdx == -1 {
			categoryIdx = i
		}
		if strings.Contains(h, cfg.Amount) && amtIdx == -1 {
			amtIdx = i
		}
	}

	if dateIdx == -1 || descIdx == -1 || amtIdx == -1 {
		return transactions
	}

	for _, row := range table[1:] {
		if len(row) == 0 {
			continue
		}
		if common.IsFooterRow(common.CellText(row[0])) {
			continue
		}

		var dateStr, amtStr, category string
		if dateIdx < len(row) {
			dateStr = common.CellText(row[dateIdx])
		}
		if amtIdx < len(row) {
			amtStr = common.CellText(row[amtIdx])
		}
		if categoryIdx != -1 && categoryIdx < len(row) {
			category = common.CellText(row[categoryIdx])
		}

		// Merged cells split one description across adjacent columns; join
		// everything between the description column and the next populated
		// column.
		endIdx := amtIdx
		if categoryIdx != -1 {
			endIdx = categoryIdx
		}
		var descParts []string
		for i := descIdx; i < endIdx && i < len(row); i++ {
			if text := common.CellText(row[i]); text != "" {
				descParts = append(descParts, text)
			}
		}
		desc := strings.Join(descParts, " ")

		if dateStr == "" || desc == "" || amtStr == "" {
			continue
		}

		date, ok := common.ParseDate(dateStr)
		if !ok {
			continue
		}

		amount, isCredit := common.DetectCreditSuffix(amtStr)
		if amount.IsZero() {
			continue
		}

		transactions = append(transactions, common.RawTransaction{
			Date:        date,
			Description: common.CleanDescription(desc),
			Amount:      amount,
			Currency:    common.HomeCurrency,
			IsCredit:    isCredit,
			Category:    category,
		})
	}

	return transactions
}
