package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a recorded solve attempt in the database.
type Solve struct {
	SolveID    string
	ScrambleID *string
	CubeSize   int
	Method     string
	Solution   string
	StepCount  int
	Solved     bool
	DurationMs int64
	CreatedAt  time.Time
}

// SolveRepository provides CRUD operations for solve attempts.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Save stores a solve attempt and returns its ID. scrambleID may be
// nil for solves of ad-hoc positions.
func (r *SolveRepository) Save(scrambleID *string, cubeSize int, method, solution string, stepCount int, solved bool, durationMs int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, scramble_id, cube_size, method, solution, step_count, solved, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, scrambleID, cubeSize, method, solution, stepCount, solved, durationMs, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to save solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. A missing ID yields (nil, nil).
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, scramble_id, cube_size, method, solution, step_count, solved, duration_ms, created_at
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &s.ScrambleID, &s.CubeSize, &s.Method,
		&s.Solution, &s.StepCount, &s.Solved, &s.DurationMs, &createdAtStr,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// ListRecent retrieves the most recent solve attempts, newest first.
func (r *SolveRepository) ListRecent(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scramble_id, cube_size, method, solution, step_count, solved, duration_ms, created_at
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(
			&s.SolveID, &s.ScrambleID, &s.CubeSize, &s.Method,
			&s.Solution, &s.StepCount, &s.Solved, &s.DurationMs, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, nil
}

// Delete deletes a solve attempt.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Count returns the number of stored solve attempts.
func (r *SolveRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// CountSolved returns the number of attempts that reached a solved
// cube.
func (r *SolveRepository) CountSolved() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solves WHERE solved = 1").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solved attempts: %w", err)
	}
	return count, nil
}
