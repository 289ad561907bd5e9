package postgres

import (
	"context"
	"fmt"
)

// StatementExists checks if a statement already exists using its natural key
func (db *DB) StatementExists(ctx context.Context, cardID, source string) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM statements
		WHERE card_id = $1 AND source = $2
	`, cardID, source).Scan(&id)

	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check statement: %w", err)
	}

	return true, id, nil
}

// CreateStatement inserts a new statement
func (db *DB) CreateStatement(ctx context.Context, cardID, source string, transactionCount int) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO statements (card_id, source, transaction_count)
		VALUES ($1, $2, $3)
		RETURNING id
	`, cardID, source, transactionCount).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create statement: %w", err)
	}

	return id, nil
}

// DeleteStatement removes a statement and its transactions (cascade)
func (db *DB) DeleteStatement(ctx context.Context, statementID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM statements WHERE id = $1`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	return nil
}
