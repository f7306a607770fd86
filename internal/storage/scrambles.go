package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a stored scramble in the database.
type Scramble struct {
	ScrambleID string
	CubeSize   int
	Seed       *int64
	MoveCount  int
	Notation   string
	CreatedAt  time.Time
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Save stores a scramble and returns its ID.
func (r *ScrambleRepository) Save(cubeSize int, notation string, moveCount int, seed *int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, cube_size, seed, move_count, notation, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, cubeSize, seed, moveCount, notation, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to save scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. A missing ID yields (nil, nil).
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	var s Scramble
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, cube_size, seed, move_count, notation, created_at
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(&s.ScrambleID, &s.CubeSize, &s.Seed, &s.MoveCount, &s.Notation, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// ListRecent retrieves the most recent scrambles, newest first. The
// rowid tiebreak keeps the order stable for rows sharing a timestamp
// second.
func (r *ScrambleRepository) ListRecent(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, cube_size, seed, move_count, notation, created_at
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		var s Scramble
		var createdAtStr string

		err := rows.Scan(&s.ScrambleID, &s.CubeSize, &s.Seed, &s.MoveCount, &s.Notation, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		scrambles = append(scrambles, s)
	}

	return scrambles, nil
}

// Delete deletes a scramble. Solves that reference it keep their row
// with the reference cleared.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

// Count returns the number of stored scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}
