package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pokersim-server/pkg/db"
)

const handColumns = `
hands.hand_id,
hands.players,
hands.actions,
hands.board_cards,
hands.stacks,
hands.winner_index,
hands.created_at`

// Hand is a record in the `hands` table: the snapshot of a completed
// simulation as the API layer persisted it.
type Hand struct {
	ID          uuid.UUID       `json:"hand_id"`
	Players     []string        `json:"players"`
	Actions     json.RawMessage `json:"actions"`
	BoardCards  []string        `json:"board_cards"`
	Stacks      []float64       `json:"stacks"`
	WinnerIndex *int64          `json:"winner_index"`
	Created     time.Time       `json:"created_at"`
}

func getHandByRow(row db.Scanner) (*Hand, error) {
	var hand Hand
	var winner sql.NullInt64
	if err := row.Scan(&hand.ID, pq.Array(&hand.Players), &hand.Actions, pq.Array(&hand.BoardCards), pq.Array(&hand.Stacks), &winner, &hand.Created); err != nil {
		return nil, err
	}
	if winner.Valid {
		hand.WinnerIndex = &winner.Int64
	}
	return &hand, nil
}

// SaveHand inserts the hand and fills in its generated id and timestamp
func SaveHand(ctx context.Context, conn *sql.DB, hand *Hand) error {
	const query = `
INSERT INTO hands (players, actions, board_cards, stacks, winner_index)
VALUES ($1, $2, $3, $4, $5)
RETURNING hand_id, created_at`

	if hand.Actions == nil {
		hand.Actions = json.RawMessage("[]")
	}

	var winner sql.NullInt64
	if hand.WinnerIndex != nil {
		winner = sql.NullInt64{Int64: *hand.WinnerIndex, Valid: true}
	}

	row := conn.QueryRowContext(ctx, query,
		pq.Array(hand.Players),
		hand.Actions,
		pq.Array(hand.BoardCards),
		pq.Array(hand.Stacks),
		winner,
	)
	return row.Scan(&hand.ID, &hand.Created)
}

// ListHands returns saved hands, newest first
func ListHands(ctx context.Context, conn *sql.DB, start int64, rows int) ([]*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hands
ORDER BY created_at DESC
OFFSET $1 LIMIT $2`

	res, err := conn.QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	hands := make([]*Hand, 0)
	for res.Next() {
		hand, err := getHandByRow(res)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, res.Err()
}
