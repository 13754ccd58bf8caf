package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database and applies the
// schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const recordColumns = `id, session_id, project, item, step, version, state,
    succeeded, failed_stage, artifacts_json, error_message, created_at`

// Append inserts a publish record, setting its ID and CreatedAt.
func (s *Store) Append(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	record.CreatedAt = time.Now().UTC()

	artifactsJSON, err := json.Marshal(record.Artifacts)
	if err != nil {
		return fmt.Errorf("marshal artifacts: %w", err)
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO publish_records (
            session_id, project, item, step, version, state,
            succeeded, failed_stage, artifacts_json, error_message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.SessionID,
		record.Project,
		record.Item,
		record.Step,
		record.Version,
		record.State,
		boolToInt(record.Succeeded),
		nullableString(record.FailedStage),
		string(artifactsJSON),
		nullableString(record.ErrorMessage),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert publish record: %w", err)
	}

	record.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

// GetByID fetches a record by identifier, returning nil when absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM publish_records WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get publish record: %w", err)
	}
	return record, nil
}

// List returns the most recent records, newest first. A non-positive
// limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM publish_records ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list publish records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publish record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListForItemStep returns records for one (item, step) pair, newest
// first.
func (s *Store) ListForItemStep(ctx context.Context, item, step string) ([]*Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+recordColumns+` FROM publish_records WHERE item = ? AND step = ? ORDER BY id DESC`,
		item, step,
	)
	if err != nil {
		return nil, fmt.Errorf("list records for item/step: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publish record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record        Record
		succeeded     int
		failedStage   sql.NullString
		artifactsJSON sql.NullString
		errorMessage  sql.NullString
		createdAt     string
	)
	err := row.Scan(
		&record.ID,
		&record.SessionID,
		&record.Project,
		&record.Item,
		&record.Step,
		&record.Version,
		&record.State,
		&succeeded,
		&failedStage,
		&artifactsJSON,
		&errorMessage,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Succeeded = succeeded != 0
	record.FailedStage = failedStage.String
	record.ErrorMessage = errorMessage.String
	if artifactsJSON.Valid && artifactsJSON.String != "" {
		if err := json.Unmarshal([]byte(artifactsJSON.String), &record.Artifacts); err != nil {
			return nil, fmt.Errorf("unmarshal artifacts: %w", err)
		}
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		record.CreatedAt = parsed
	}
	return &record, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
