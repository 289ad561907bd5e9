package extractor

import (
	"io"
	"log"
	"regexp"

	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/mintbomb27/cc-wrapped/extractor/pdfdoc"
)

var (
	fallbackDateRegex   = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	fallbackAmountRegex = regexp.MustCompile(`^[\d,.-]+(Cr|Dr)?$`)
)

// ProcessDocument extracts raw transactions from a decoded statement. Pages
// are processed strictly in order, tables within a page in order. The line
// scanner only runs when table extraction across the ENTIRE document yielded
// nothing — a later page's table result suppresses fallback scanning of an
// earlier empty page.
func ProcessDocument(doc common.Document, issuer string) []common.RawTransaction {
	transactions := []common.RawTransaction{}

	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			transactions = append(transactions, extractTable(table, issuer)...)
		}
	}

	if len(transactions) == 0 {
		for _, page := range doc.Pages {
			transactions = append(transactions, ScanText(page.Text)...)
		}
	}

	return transactions
}

// extractTable dispatches one table to its strategy. A strategy that fails
// while processing a table it claimed costs only that table: the failure is
// logged and extraction moves on.
func extractTable(table common.Table, issuer string) (result []common.RawTransaction) {
	strategy := ForTable(table, issuer)
	if strategy == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN %s strategy failed on table: %v", strategy.Name(), r)
			result = nil
		}
	}()

	result = strategy.Extract(table)
	if len(result) > 0 {
		log.Printf("\t%s strategy extracted %d transactions", strategy.Name(), len(result))
	}
	return result
}

// ProcessFile opens and extracts a single statement file. Open/decrypt
// failures yield an empty result, not an error: the caller treats zero
// transactions as a valid outcome and relies on logging for diagnosis.
func ProcessFile(path, password, issuer string) []common.RawTransaction {
	doc, err := pdfdoc.Open(path, password)
	if err != nil {
		log.Printf("WARN could not open %s: %v", path, err)
		return []common.RawTransaction{}
	}
	return ProcessDocument(*doc, issuer)
}

// ProcessReader is ProcessFile for an already-open stream (API uploads).
func ProcessReader(reader io.Reader, name, password, issuer string) []common.RawTransaction {
	doc, err := pdfdoc.FromReader(reader, name, password)
	if err != nil {
		log.Printf("WARN could not decode %s: %v", name, err)
		return []common.RawTransaction{}
	}
	return ProcessDocument(*doc, issuer)
}
