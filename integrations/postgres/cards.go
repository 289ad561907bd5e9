package postgres

import (
	"context"
	"fmt"
)

// Card identifies one credit card whose statements are imported together.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Last4  string `json:"last4"`
	Issuer string `json:"issuer"`
}

// GetOrCreateCard finds an existing card by name or creates a new one
func (db *DB) GetOrCreateCard(ctx context.Context, card Card) (string, error) {
	var id string

	// Try to find existing card
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM cards WHERE name = $1
	`, card.Name).Scan(&id)

	if err == nil {
		// Card exists, refresh metadata
		// - Only update last4 and issuer if non-empty (preserve known values)
		_, err = db.Pool.Exec(ctx, `
			UPDATE cards
			SET last4 = CASE WHEN $1::text != '' THEN $1 ELSE last4 END,
			    issuer = CASE WHEN $2::text != '' THEN $2 ELSE issuer END,
			    updated_at = NOW()
			WHERE id = $3
		`, card.Last4, card.Issuer, id)
		if err != nil {
			return "", fmt.Errorf("failed to update card: %w", err)
		}
		return id, nil
	}

	// Create new card
	issuer := card.Issuer
	if issuer == "" {
		issuer = "other"
	}
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO cards (name, last4, issuer)
		VALUES ($1, $2, $3)
		RETURNING id
	`, card.Name, card.Last4, issuer).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create card: %w", err)
	}

	return id, nil
}

// GetCard fetches one card by name
func (db *DB) GetCard(ctx context.Context, name string) (*Card, error) {
	var card Card
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, last4, issuer FROM cards WHERE name = $1
	`, name).Scan(&card.ID, &card.Name, &card.Last4, &card.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

// ListCards returns all cards ordered by name
func (db *DB) ListCards(ctx context.Context) ([]Card, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, last4, issuer FROM cards ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var card Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Last4, &card.Issuer); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
