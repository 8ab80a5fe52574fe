package db

import (
	"os"
	"testing"
	"time"

	"gameboard/internal/participants"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	database, err := Connect(dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		database.conn.Exec("DELETE FROM board_participants")
		database.conn.Exec("DELETE FROM board")
		database.Close()
	})
	return database
}

func TestConnect(t *testing.T) {
	database := getTestDB(t)
	if err := database.Ping(); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	database := getTestDB(t)

	tables := []string{"board", "board_participants"}
	for _, table := range tables {
		var exists bool
		err := database.conn.QueryRow(`
			SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)
		`, table).Scan(&exists)
		if err != nil {
			t.Errorf("checking table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestReplaceBoard(t *testing.T) {
	database := getTestDB(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	ranked := []participants.Participant{
		{ID: "id1", Name: "Alice", CompletedRounds: 3, TotalMistakes: 1, UpdatedAt: now},
		{ID: "id2", Name: "Bob", CompletedRounds: 2, TotalMistakes: 0, UpdatedAt: now},
	}
	if err := database.ReplaceBoard(now, ranked); err != nil {
		t.Fatalf("ReplaceBoard() error: %v", err)
	}

	got, err := database.BoardUpdatedAt()
	if err != nil {
		t.Fatalf("BoardUpdatedAt() error: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("BoardUpdatedAt = %v, want %v", got, now)
	}

	var rank int
	if err := database.conn.QueryRow(
		`SELECT rank FROM board_participants WHERE id = $1`, "id2",
	).Scan(&rank); err != nil {
		t.Fatalf("reading participant row: %v", err)
	}
	if rank != 2 {
		t.Errorf("rank = %d, want 2", rank)
	}

	// A second write fully replaces the board row and re-ranks participants.
	later := now.Add(time.Minute)
	reordered := []participants.Participant{ranked[1], ranked[0]}
	if err := database.ReplaceBoard(later, reordered); err != nil {
		t.Fatalf("ReplaceBoard() second write error: %v", err)
	}
	if err := database.conn.QueryRow(
		`SELECT rank FROM board_participants WHERE id = $1`, "id2",
	).Scan(&rank); err != nil {
		t.Fatalf("reading participant row: %v", err)
	}
	if rank != 1 {
		t.Errorf("rank after rewrite = %d, want 1", rank)
	}
}

func TestBoardUpdatedAt_Empty(t *testing.T) {
	database := getTestDB(t)

	if _, err := database.BoardUpdatedAt(); err == nil {
		t.Error("BoardUpdatedAt should error when no board row exists")
	}
}
