package common

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is a single table row. Cells are pointers because the upstream table
// extraction reports merged/spanned cells as nil.
type Row []*string

// Table is the unit handed to an extraction strategy: an ordered sequence of
// rows as produced by the document-table collaborator.
type Table []Row

// Page holds everything extracted from one statement page. Text is the plain
// rendering of the page and is only consulted by the fallback line scanner.
type Page struct {
	Tables []Table
	Text   string
}

// Document is a fully decoded statement, pages in order.
type Document struct {
	Source string
	Pages  []Page
}

// RawTransaction is the unit emitted by an extraction strategy, before
// semantic classification. Amount is always a non-negative magnitude;
// direction is carried by IsCredit only. Category is set only when the
// statement itself labels the transaction.
type RawTransaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	IsCredit    bool            `json:"is_credit"`
	Category    string          `json:"category,omitempty"`
}

// HomeCurrency is the issuer default applied when a statement does not state
// one.
const HomeCurrency = "INR"

// CellText dereferences a cell, treating nil (merged cell) as empty.
func CellText(c *string) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(*c)
}

// RowText joins the non-empty cells of a row with single spaces.
func RowText(row Row) string {
	var parts []string
	for _, c := range row {
		if text := CellText(c); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Cells builds a Row from plain strings. Empty strings become nil cells,
// mirroring how the table collaborator reports merged cells. Intended for
// tests and fixtures.
func Cells(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		s := v
		row[i] = &s
	}
	return row
}
