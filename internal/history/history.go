// Package history persists solved systems in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/linear"
)

var (
	// ErrNotFound is returned when no record matches an id.
	ErrNotFound = errors.New("history: record not found")

	// ErrAmbiguous is returned when an id prefix matches several records.
	ErrAmbiguous = errors.New("history: id prefix is ambiguous")
)

// Record is one solve attempt.
type Record struct {
	ID        string
	CreatedAt time.Time
	Unknowns  int
	Policy    string
	Matrix    [][]cplx.Complex
	Solution  linear.Vector // nil when the solve failed
	Error     string
}

// Augmented rebuilds the stored matrix.
func (r *Record) Augmented() (*linear.Augmented, error) {
	return linear.FromRows(r.Matrix)
}

// Store is a SQLite-backed history. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates or opens the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	s := &Store{db: db}
	if err = s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		unknowns INTEGER NOT NULL,
		policy TEXT NOT NULL DEFAULT '',
		matrix TEXT NOT NULL,
		solution TEXT,
		error TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a solve of a. x is the solution, or nil with solveErr set.
func (s *Store) Save(ctx context.Context, a *linear.Augmented, x linear.Vector, policy string, solveErr error) (*Record, error) {
	if a == nil {
		return nil, fmt.Errorf("history: %w", linear.ErrNilMatrix)
	}

	rec := &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Unknowns:  a.Unknowns(),
		Policy:    policy,
		Matrix:    make([][]cplx.Complex, a.Rows()),
		Solution:  x,
	}
	for i := range rec.Matrix {
		rec.Matrix[i] = a.Row(i)
	}
	if solveErr != nil {
		rec.Error = solveErr.Error()
	}

	matrixJSON, err := json.Marshal(encodeRows(rec.Matrix))
	if err != nil {
		return nil, fmt.Errorf("history: encode matrix: %w", err)
	}
	var solutionJSON []byte
	if x != nil {
		if solutionJSON, err = json.Marshal(encodeRow(x)); err != nil {
			return nil, fmt.Errorf("history: encode solution: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO solves (id, created_at, unknowns, policy, matrix, solution, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.CreatedAt, rec.Unknowns, rec.Policy, string(matrixJSON), nullable(solutionJSON), rec.Error)
	if err != nil {
		return nil, fmt.Errorf("history: save: %w", err)
	}

	return rec, nil
}

// List returns up to limit records, most recently saved first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = -1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, unknowns, policy, matrix, solution, error
		FROM solves ORDER BY rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}

	return out, nil
}

// Get returns the record whose id is, or starts with, id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, unknowns, policy, matrix, solution, error
		FROM solves WHERE id = ? OR substr(id, 1, ?) = ? LIMIT 2
	`, id, len(id), id)
	if err != nil {
		return nil, fmt.Errorf("history: get: %w", err)
	}
	defer rows.Close()

	var found []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("history: get: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return found[0], nil
	}

	return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
}

// Delete removes the record with exactly this id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM solves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var (
		rec          Record
		matrixJSON   string
		solutionJSON sql.NullString
	)
	err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Unknowns, &rec.Policy, &matrixJSON, &solutionJSON, &rec.Error)
	if err != nil {
		return nil, fmt.Errorf("history: scan: %w", err)
	}

	var cells [][][2]string
	if err = json.Unmarshal([]byte(matrixJSON), &cells); err != nil {
		return nil, fmt.Errorf("history: decode matrix of %s: %w", rec.ID, err)
	}
	if rec.Matrix, err = decodeRows(cells); err != nil {
		return nil, fmt.Errorf("history: decode matrix of %s: %w", rec.ID, err)
	}

	if solutionJSON.Valid {
		var sol [][2]string
		if err = json.Unmarshal([]byte(solutionJSON.String), &sol); err != nil {
			return nil, fmt.Errorf("history: decode solution of %s: %w", rec.ID, err)
		}
		if rec.Solution, err = decodeRow(sol); err != nil {
			return nil, fmt.Errorf("history: decode solution of %s: %w", rec.ID, err)
		}
	}

	return &rec, nil
}

// Values are stored as ["re", "im"] strings so NaN and ±Inf survive.

func encodeRows(rows [][]cplx.Complex) [][][2]string {
	out := make([][][2]string, len(rows))
	for i, r := range rows {
		out[i] = encodeRow(r)
	}

	return out
}

func encodeRow(row []cplx.Complex) [][2]string {
	out := make([][2]string, len(row))
	for j, v := range row {
		out[j] = [2]string{formatPart(v.Re), formatPart(v.Im)}
	}

	return out
}

func decodeRows(rows [][][2]string) ([][]cplx.Complex, error) {
	out := make([][]cplx.Complex, len(rows))
	for i, r := range rows {
		row, err := decodeRow(r)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

func decodeRow(row [][2]string) ([]cplx.Complex, error) {
	out := make([]cplx.Complex, len(row))
	for j, p := range row {
		re, err := strconv.ParseFloat(p[0], 32)
		if err != nil {
			return nil, err
		}
		im, err := strconv.ParseFloat(p[1], 32)
		if err != nil {
			return nil, err
		}
		out[j] = cplx.New(float32(re), float32(im))
	}

	return out, nil
}

func formatPart(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

func nullable(b []byte) interface{} {
	if b == nil {
		return nil
	}

	return string(b)
}
