package db

import (
	"encoding/json"
	"fmt"
	"time"

	"gameboard/internal/participants"
)

// ReplaceBoard mirrors the ranked snapshot into Postgres: the single board
// row holds the full JSON document, and participant rows are upserted with
// their current rank for ad-hoc querying. Last writer wins.
func (d *DB) ReplaceBoard(updatedAt time.Time, ranked []participants.Participant) error {
	payload, err := json.Marshal(ranked)
	if err != nil {
		return fmt.Errorf("encoding board payload: %w", err)
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO board (id, updated_at, payload)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET updated_at = $1, payload = $2
	`, updatedAt, payload); err != nil {
		return fmt.Errorf("upserting board row: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO board_participants (id, name, completed_rounds, total_mistakes, rank, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = $2, completed_rounds = $3, total_mistakes = $4, rank = $5, updated_at = $6
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, p := range ranked {
		if _, err := stmt.Exec(p.ID, p.Name, p.CompletedRounds, p.TotalMistakes, i+1, p.UpdatedAt); err != nil {
			return fmt.Errorf("upserting participant %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// BoardUpdatedAt returns the mirror's last write time, or zero when the board
// row has never been written.
func (d *DB) BoardUpdatedAt() (time.Time, error) {
	var updatedAt time.Time
	err := d.conn.QueryRow(`SELECT updated_at FROM board WHERE id = 1`).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading board row: %w", err)
	}
	return updatedAt, nil
}
