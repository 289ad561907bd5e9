package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mintbomb27/cc-wrapped/classify"
)

// CreateTransactions bulk inserts classified transactions for a statement
func (db *DB) CreateTransactions(ctx context.Context, statementID string, transactions []classify.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, tx := range transactions {
		batch.Queue(`
			INSERT INTO transactions (
				statement_id, sequence, date, description, amount, currency,
				category, is_credit, is_bill_payment, is_cashback, is_hidden_charge
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`,
			statementID, i, tx.Date, tx.Description, tx.Amount, tx.Currency,
			tx.Category, tx.IsCredit, tx.IsBillPayment, tx.IsCashback, tx.IsHiddenCharge,
		)
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range transactions {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	return nil
}

// ListTransactions returns all of a card's transactions ascending by date,
// across all of its statements. The report aggregator consumes this set.
func (db *DB) ListTransactions(ctx context.Context, cardID string) ([]classify.Transaction, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT t.date, t.description, t.amount, t.currency, t.category,
		       t.is_credit, t.is_bill_payment, t.is_cashback, t.is_hidden_charge
		FROM transactions t
		JOIN statements s ON s.id = t.statement_id
		WHERE s.card_id = $1
		ORDER BY t.date ASC, t.sequence ASC
	`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []classify.Transaction
	for rows.Next() {
		var tx classify.Transaction
		if err := rows.Scan(
			&tx.Date, &tx.Description, &tx.Amount, &tx.Currency, &tx.Category,
			&tx.IsCredit, &tx.IsBillPayment, &tx.IsCashback, &tx.IsHiddenCharge,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
